package impl

import (
	"context"
	"log/slog"
	"time"

	"crewdir/internal/domain/entity"
	domainerrors "crewdir/internal/domain/errors"
	"crewdir/internal/domain/repository"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// agencyAdminService implements the AgencyAdminUsecase interface: the thin
// partial-update orchestrator in front of the scalar update and the relation
// reconciler.
type agencyAdminService struct {
	agencyRepo repository.AgencyRepository
	editRepo   repository.ProfileEditRepository
	reconciler usecase.ReconcilerUsecase
	logger     *slog.Logger
}

// NewAgencyAdminService is the constructor for agencyAdminService.
func NewAgencyAdminService(
	agencyRepo repository.AgencyRepository,
	editRepo repository.ProfileEditRepository,
	reconciler usecase.ReconcilerUsecase,
	logger *slog.Logger,
) usecase.AgencyAdminUsecase {
	return &agencyAdminService{
		agencyRepo: agencyRepo,
		editRepo:   editRepo,
		reconciler: reconciler,
		logger:     logger,
	}
}

// UpdateAgency applies a sparse admin edit: scalar fields, trade membership,
// region membership, in any combination. Relation keys appear in the output
// only when the matching array was part of the input.
func (srv *agencyAdminService) UpdateAgency(ctx context.Context, input usecase.UpdateAgencyInput) (*usecase.UpdateAgencyOutput, error) {
	hasScalars := input.HasScalarFields()
	if !hasScalars && input.TradeIDs == nil && input.RegionIDs == nil {
		return nil, domainerrors.ErrValidationFailed.WithMessage("at least one field or relation must be provided")
	}

	if input.SizeClass != nil && !entity.ValidSizeClass(*input.SizeClass) {
		return nil, domainerrors.NewValidationError(
			"unknown size class",
			map[string]any{"size_class": *input.SizeClass},
		)
	}

	agency, err := srv.agencyRepo.FindByID(ctx, input.AgencyID)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, domainerrors.ErrAgencyNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find agency")
	}

	srv.logger.Info("Updating agency",
		"agencyID", agency.ID, "editorID", input.EditorID,
		"scalars", hasScalars, "trades", input.TradeIDs != nil, "regions", input.RegionIDs != nil)

	// 1. Scalar fields first; the update itself stamps the audit
	//    attribution, so no separate touch is needed afterwards.
	if hasScalars {
		applyScalarFields(agency, input)
		agency.Touch(input.EditorID, time.Now())

		if err := srv.agencyRepo.Update(ctx, agency); err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to update agency fields")
		}
	}

	output := &usecase.UpdateAgencyOutput{Agency: agency}

	// 2. Relation reconciliations, each with its own audit row.
	if input.TradeIDs != nil {
		result, err := srv.reconciler.Reconcile(ctx, agency.ID, entity.RelationTrades, *input.TradeIDs, input.EditorID)
		if err != nil {
			return nil, err
		}
		output.Trades = &result.Members
	}

	if input.RegionIDs != nil {
		result, err := srv.reconciler.Reconcile(ctx, agency.ID, entity.RelationRegions, *input.RegionIDs, input.EditorID)
		if err != nil {
			return nil, err
		}
		output.Regions = &result.Members
	}

	// 3. When reconciliation was the sole mutation, stamp the audit
	//    attribution explicitly; best-effort, the memberships are already
	//    committed.
	if !hasScalars {
		now := time.Now()
		if err := srv.agencyRepo.TouchLastEdited(ctx, agency.ID, input.EditorID, now); err != nil {
			srv.logger.Warn("failed to stamp agency audit fields",
				"agencyID", agency.ID, "error", err)
		} else {
			agency.Touch(input.EditorID, now)
		}
	}

	return output, nil
}

// GetEditHistory returns the agency's audit trail, newest first.
func (srv *agencyAdminService) GetEditHistory(ctx context.Context, agencyID uuid.UUID, limit int) ([]*entity.AgencyProfileEdit, error) {
	if _, err := srv.agencyRepo.FindByID(ctx, agencyID); err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, domainerrors.ErrAgencyNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find agency")
	}

	edits, err := srv.editRepo.ListByAgency(ctx, agencyID, limit)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list profile edits")
	}

	return edits, nil
}

// applyScalarFields copies the present scalar fields onto the aggregate.
func applyScalarFields(agency *entity.Agency, input usecase.UpdateAgencyInput) {
	if input.Name != nil {
		agency.Name = *input.Name
	}
	if input.About != nil {
		agency.About = *input.About
	}
	if input.Phone != nil {
		agency.Phone = *input.Phone
	}
	if input.Email != nil {
		agency.Email = *input.Email
	}
	if input.Website != nil {
		agency.Website = *input.Website
	}
	if input.FoundedYear != nil {
		agency.FoundedYear = *input.FoundedYear
	}
	if input.SizeClass != nil {
		agency.SizeClass = entity.SizeClass(*input.SizeClass)
	}
	if input.IsActive != nil {
		agency.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		agency.IsFeatured = *input.IsFeatured
	}
	if input.IsClaimed != nil {
		agency.IsClaimed = *input.IsClaimed
	}
}
