package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"crewdir/config"
	"crewdir/internal/domain/entity"
	domainerrors "crewdir/internal/domain/errors"
	"crewdir/internal/domain/repository"
	"crewdir/internal/domain/service"
	"crewdir/internal/usecase"
	"crewdir/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultMaxUploadBytes = 10 << 20 // 10MB
	defaultSignedURLTTL   = 7 * 24 * time.Hour
)

// mimeExtensions is the fixed MIME-to-extension fallback table for stored
// document names.
var mimeExtensions = map[string]string{
	"application/pdf": "pdf",
	"image/png":       "png",
	"image/jpeg":      "jpeg",
}

// complianceService implements the ComplianceUsecase interface: the document
// lifecycle manager coupling object storage to the relational status record,
// with best-effort notification.
type complianceService struct {
	agencyRepo     repository.AgencyRepository
	complianceRepo repository.ComplianceRepository
	storage        service.DocumentStorage
	mailer         service.MailService
	cfg            *config.Config
	logger         *slog.Logger
}

// NewComplianceService is the constructor for complianceService.
func NewComplianceService(
	agencyRepo repository.AgencyRepository,
	complianceRepo repository.ComplianceRepository,
	storage service.DocumentStorage,
	mailer service.MailService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ComplianceUsecase {
	return &complianceService{
		agencyRepo:     agencyRepo,
		complianceRepo: complianceRepo,
		storage:        storage,
		mailer:         mailer,
		cfg:            cfg,
		logger:         logger,
	}
}

// UploadDocument stores a new compliance document and upserts the status row.
// The object must exist before the reference can point to it, so the storage
// side effect runs first and is fatal on failure; only then is the relational
// change committed.
func (srv *complianceService) UploadDocument(ctx context.Context, input usecase.UploadDocumentInput) (*usecase.UploadDocumentOutput, error) {
	complianceType, ok := entity.ParseComplianceType(input.ComplianceType)
	if !ok {
		return nil, domainerrors.NewValidationError(
			"unknown compliance type",
			map[string]any{"compliance_type": input.ComplianceType},
		)
	}

	if _, ok := mimeExtensions[input.ContentType]; !ok {
		return nil, domainerrors.NewValidationError(
			"file type must be pdf, png or jpeg",
			map[string]any{"content_type": input.ContentType},
		)
	}

	if input.Size <= 0 || input.Size > srv.maxUploadBytes() {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("file size must be between 1 B and %s", util.FormatBytes(srv.maxUploadBytes())),
			map[string]any{"size": input.Size},
		)
	}

	agency, err := srv.findAgency(ctx, input.AgencyID)
	if err != nil {
		return nil, err
	}

	existing, err := srv.findCompliance(ctx, agency.ID, complianceType)
	if err != nil {
		return nil, err
	}

	// Drop the previous object before storing the replacement. A stray
	// orphaned object is recoverable out-of-band, so failure here must not
	// block the upload.
	if existing != nil && existing.DocumentURL != nil {
		if oldPath, ok := srv.storage.ObjectPath(*existing.DocumentURL); ok {
			if err := srv.storage.Remove(ctx, oldPath); err != nil {
				srv.logger.Warn("failed to remove previous compliance document",
					"agencyID", agency.ID, "complianceType", complianceType, "error", err)
			}
		}
	}

	path := objectPath(agency.ID, complianceType, time.Now(), input.FileName, input.ContentType)

	if err := srv.storage.Upload(ctx, path, input.Content, input.Size, input.ContentType); err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to store compliance document")
	}

	documentURL, err := srv.storage.SignedURL(ctx, path, srv.signedURLTTL())
	if err != nil {
		return nil, domainerrors.NewStorageError(err, "failed to mint signed document URL")
	}

	row := existing
	if row == nil {
		row = &entity.AgencyCompliance{
			AgencyID:       agency.ID,
			ComplianceType: complianceType,
			IsActive:       false,
		}
	}
	// Replacement overwrites the document reference only; the prior active
	// flag is preserved and a verified flag survives re-upload.
	row.ApplyUpload(documentURL)

	if err := srv.complianceRepo.Upsert(ctx, row); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to upsert compliance status row")
	}

	srv.logger.Info("Compliance document uploaded",
		"agencyID", agency.ID, "complianceType", complianceType, "path", path)

	return &usecase.UploadDocumentOutput{DocumentURL: documentURL}, nil
}

// ReviewDocument applies a verify or reject decision to the document on file.
func (srv *complianceService) ReviewDocument(ctx context.Context, input usecase.ReviewDocumentInput) (*usecase.ReviewDocumentOutput, error) {
	complianceType, ok := entity.ParseComplianceType(input.ComplianceType)
	if !ok {
		return nil, domainerrors.NewValidationError(
			"unknown compliance type",
			map[string]any{"compliance_type": input.ComplianceType},
		)
	}

	switch input.Action {
	case usecase.ReviewActionVerify:
		return srv.verify(ctx, complianceType, input)
	case usecase.ReviewActionReject:
		return srv.reject(ctx, complianceType, input)
	default:
		return nil, domainerrors.NewValidationError(
			"action must be \"verify\" or \"reject\"",
			map[string]any{"action": input.Action},
		)
	}
}

// verify marks the pending document as verified by the caller. Notes are
// replaced only when the reviewer supplied new ones.
func (srv *complianceService) verify(ctx context.Context, complianceType entity.ComplianceType, input usecase.ReviewDocumentInput) (*usecase.ReviewDocumentOutput, error) {
	row, err := srv.findCompliance(ctx, input.AgencyID, complianceType)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domainerrors.ErrComplianceNotFound
	}

	if err := row.ApplyVerify(input.ReviewerID, time.Now(), input.Notes); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("no document on file to verify")
	}

	if err := srv.complianceRepo.Update(ctx, row); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to update compliance status row")
	}

	srv.logger.Info("Compliance document verified",
		"agencyID", input.AgencyID, "complianceType", complianceType, "reviewerID", input.ReviewerID)

	return &usecase.ReviewDocumentOutput{
		Compliance: row,
		Message:    fmt.Sprintf("%s document verified.", complianceType.DisplayName()),
	}, nil
}

// reject clears the document and verification state, then performs the
// best-effort cleanup and notification side effects. The relational change is
// the user-visible contract, so it commits first; object removal and the
// rejection email follow and may fail without failing the request.
func (srv *complianceService) reject(ctx context.Context, complianceType entity.ComplianceType, input usecase.ReviewDocumentInput) (*usecase.ReviewDocumentOutput, error) {
	reason := strings.TrimSpace(input.Reason)
	if len(reason) < usecase.MinRejectReasonLength {
		return nil, domainerrors.NewValidationError(
			fmt.Sprintf("a rejection reason of at least %d characters is required", usecase.MinRejectReasonLength),
			map[string]any{"reason": input.Reason},
		)
	}

	agency, err := srv.findAgency(ctx, input.AgencyID)
	if err != nil {
		return nil, err
	}

	row, err := srv.findCompliance(ctx, agency.ID, complianceType)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domainerrors.ErrComplianceNotFound
	}

	var oldPath string
	if row.DocumentURL != nil {
		oldPath, _ = srv.storage.ObjectPath(*row.DocumentURL)
	}

	if err := row.ApplyReject(input.Notes); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("no document on file to reject")
	}

	steps := []step{
		{
			name:     "update status row",
			critical: true,
			run: func(ctx context.Context) error {
				return srv.complianceRepo.Update(ctx, row)
			},
		},
		{
			name: stepRemoveObject,
			run: func(ctx context.Context) error {
				if oldPath == "" {
					return nil
				}

				return srv.storage.Remove(ctx, oldPath)
			},
		},
		{
			name: stepSendRejectionEmail,
			run: func(ctx context.Context) error {
				if agency.Email == "" {
					return errors.New("agency has no contact email")
				}

				return srv.mailer.Send(ctx, rejectionEmail(agency, complianceType, reason))
			},
		},
	}

	failed, err := runSteps(ctx, srv.logger, steps)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to update compliance status row")
	}

	message := fmt.Sprintf("%s document rejected", complianceType.DisplayName())
	if slices.Contains(failed, stepSendRejectionEmail) {
		message += "; the agency could not be notified by email."
	} else {
		message += " and the agency was notified by email."
	}

	srv.logger.Info("Compliance document rejected",
		"agencyID", agency.ID, "complianceType", complianceType, "reviewerID", input.ReviewerID)

	return &usecase.ReviewDocumentOutput{
		Compliance: row,
		Message:    message,
	}, nil
}

// DeleteDocument removes the stored document and clears the document
// reference; the active flag is untouched.
func (srv *complianceService) DeleteDocument(ctx context.Context, input usecase.DeleteDocumentInput) error {
	complianceType, ok := entity.ParseComplianceType(input.ComplianceType)
	if !ok {
		return domainerrors.NewValidationError(
			"unknown compliance type",
			map[string]any{"compliance_type": input.ComplianceType},
		)
	}

	row, err := srv.findCompliance(ctx, input.AgencyID, complianceType)
	if err != nil {
		return err
	}
	if row == nil {
		return domainerrors.ErrComplianceNotFound
	}

	if row.DocumentURL != nil {
		if path, ok := srv.storage.ObjectPath(*row.DocumentURL); ok {
			if err := srv.storage.Remove(ctx, path); err != nil {
				srv.logger.Warn("failed to remove compliance document object",
					"agencyID", input.AgencyID, "complianceType", complianceType, "error", err)
			}
		}
	}

	row.ApplyDelete()

	if err := srv.complianceRepo.Update(ctx, row); err != nil {
		return domainerrors.NewStoreError(err, "failed to update compliance status row")
	}

	srv.logger.Info("Compliance document deleted",
		"agencyID", input.AgencyID, "complianceType", complianceType)

	return nil
}

// ListCompliance returns all compliance status rows of an agency.
func (srv *complianceService) ListCompliance(ctx context.Context, agencyID uuid.UUID) ([]*entity.AgencyCompliance, error) {
	rows, err := srv.complianceRepo.FindByAgency(ctx, agencyID)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list compliance rows")
	}

	return rows, nil
}

// Best-effort step names referenced by the response message.
const (
	stepRemoveObject       = "remove stored object"
	stepSendRejectionEmail = "send rejection email"
)

func (srv *complianceService) findAgency(ctx context.Context, id uuid.UUID) (*entity.Agency, error) {
	agency, err := srv.agencyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, domainerrors.ErrAgencyNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find agency")
	}

	return agency, nil
}

// findCompliance returns (nil, nil) when no row exists yet.
func (srv *complianceService) findCompliance(ctx context.Context, agencyID uuid.UUID, complianceType entity.ComplianceType) (*entity.AgencyCompliance, error) {
	row, err := srv.complianceRepo.FindByAgencyAndType(ctx, agencyID, complianceType)
	if err != nil {
		if errors.Is(err, repository.ErrComplianceNotFound) {
			return nil, nil
		}

		return nil, domainerrors.NewStoreError(err, "failed to find compliance row")
	}

	return row, nil
}

func (srv *complianceService) maxUploadBytes() int64 {
	if srv.cfg != nil && srv.cfg.Compliance != nil && srv.cfg.Compliance.MaxUploadBytes > 0 {
		return srv.cfg.Compliance.MaxUploadBytes
	}

	return defaultMaxUploadBytes
}

func (srv *complianceService) signedURLTTL() time.Duration {
	if srv.cfg != nil && srv.cfg.Storage != nil && srv.cfg.Storage.SignedURLTTL > 0 {
		return srv.cfg.Storage.SignedURLTTL
	}

	return defaultSignedURLTTL
}

// objectPath derives the storage path for a document:
// {agencyID}/{complianceType}/{epochMillis}.{extension}. The extension comes
// from the original filename's suffix when present, else the MIME table,
// else "pdf".
func objectPath(agencyID uuid.UUID, complianceType entity.ComplianceType, now time.Time, fileName, contentType string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if ext == "" {
		ext = mimeExtensions[contentType]
	}
	if ext == "" {
		ext = "pdf"
	}

	return fmt.Sprintf("%s/%s/%d.%s", agencyID, complianceType, now.UnixMilli(), ext)
}

// rejectionEmail assembles the templated notification for a rejected
// document.
func rejectionEmail(agency *entity.Agency, complianceType entity.ComplianceType, reason string) service.MailMessage {
	subject := fmt.Sprintf("Your %s document was rejected", complianceType.DisplayName())
	text := fmt.Sprintf(
		"Hello %s,\n\nThe %s document you submitted was rejected for the following reason:\n\n%s\n\nPlease upload a corrected document.\n",
		agency.Name, complianceType.DisplayName(), reason,
	)
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>The %s document you submitted was rejected for the following reason:</p><blockquote>%s</blockquote><p>Please upload a corrected document.</p>",
		agency.Name, complianceType.DisplayName(), reason,
	)

	return service.MailMessage{
		To:      agency.Email,
		Subject: subject,
		HTML:    html,
		Text:    text,
	}
}
