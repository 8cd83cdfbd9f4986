package impl

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"crewdir/config"
	"crewdir/internal/domain/entity"
	domainerrors "crewdir/internal/domain/errors"
	"crewdir/internal/domain/repository"
	mockRepo "crewdir/internal/mocks/repository"
	mockSvc "crewdir/internal/mocks/service"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type complianceFixture struct {
	agencyRepo     *mockRepo.MockAgencyRepository
	complianceRepo *mockRepo.MockComplianceRepository
	storage        *mockSvc.MockDocumentStorage
	mailer         *mockSvc.MockMailService
	service        usecase.ComplianceUsecase
}

func newComplianceFixture(t *testing.T) *complianceFixture {
	f := &complianceFixture{
		agencyRepo:     mockRepo.NewMockAgencyRepository(t),
		complianceRepo: mockRepo.NewMockComplianceRepository(t),
		storage:        mockSvc.NewMockDocumentStorage(t),
		mailer:         mockSvc.NewMockMailService(t),
	}
	f.service = NewComplianceService(
		f.agencyRepo, f.complianceRepo, f.storage, f.mailer,
		&config.Config{}, newTestLogger(),
	)

	return f
}

func TestComplianceService_UploadDocument_NewDocument(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	content := bytes.NewReader([]byte("%PDF-1.7"))

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID, Name: "Crew Co"}, nil)

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceBusinessLicense).
		Return(nil, repository.ErrComplianceNotFound)

	f.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), content, int64(8), "application/pdf").
		Run(func(ctx context.Context, path string, body io.Reader, size int64, contentType string) {
			assert.Contains(t, path, agencyID.String()+"/business_license/")
			assert.Contains(t, path, ".pdf")
		}).
		Return(nil)

	f.storage.EXPECT().
		SignedURL(ctx, mock.AnythingOfType("string"), 7*24*time.Hour).
		Return("https://storage.example.com/bucket/doc.pdf?sig=abc", nil)

	f.complianceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.AgencyCompliance")).
		Run(func(ctx context.Context, row *entity.AgencyCompliance) {
			assert.Equal(t, agencyID, row.AgencyID)
			assert.Equal(t, entity.ComplianceBusinessLicense, row.ComplianceType)
			require.NotNil(t, row.DocumentURL)
			assert.Equal(t, "https://storage.example.com/bucket/doc.pdf?sig=abc", *row.DocumentURL)
			assert.False(t, row.IsVerified)
			assert.Equal(t, entity.StatePendingReview, row.State())
		}).
		Return(nil)

	output, err := f.service.UploadDocument(ctx, usecase.UploadDocumentInput{
		AgencyID:       agencyID,
		EditorID:       uuid.New(),
		ComplianceType: "business_license",
		FileName:       "license.pdf",
		ContentType:    "application/pdf",
		Size:           8,
		Content:        content,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/bucket/doc.pdf?sig=abc", output.DocumentURL)
}

func TestComplianceService_UploadDocument_ReplacementRemovesOldObject(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	oldURL := "https://storage.example.com/bucket/old.pdf"
	content := bytes.NewReader([]byte("%PDF-1.7"))

	existing := &entity.AgencyCompliance{
		ID:             uuid.New(),
		AgencyID:       agencyID,
		ComplianceType: entity.ComplianceW9,
		DocumentURL:    &oldURL,
		IsVerified:     true,
	}

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID}, nil)

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceW9).
		Return(existing, nil)

	f.storage.EXPECT().
		ObjectPath(oldURL).
		Return("old/path.pdf", true)

	// Removal of the replaced object is best-effort.
	f.storage.EXPECT().
		Remove(ctx, "old/path.pdf").
		Return(errors.New("object store unavailable"))

	f.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), content, int64(8), "application/pdf").
		Return(nil)

	f.storage.EXPECT().
		SignedURL(ctx, mock.AnythingOfType("string"), 7*24*time.Hour).
		Return("https://storage.example.com/bucket/new.pdf", nil)

	f.complianceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.AgencyCompliance")).
		Run(func(ctx context.Context, row *entity.AgencyCompliance) {
			require.NotNil(t, row.DocumentURL)
			assert.Equal(t, "https://storage.example.com/bucket/new.pdf", *row.DocumentURL)
			assert.True(t, row.IsVerified)
		}).
		Return(nil)

	output, err := f.service.UploadDocument(ctx, usecase.UploadDocumentInput{
		AgencyID:       agencyID,
		EditorID:       uuid.New(),
		ComplianceType: "w9",
		FileName:       "w9.pdf",
		ContentType:    "application/pdf",
		Size:           8,
		Content:        content,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/bucket/new.pdf", output.DocumentURL)
}

func TestComplianceService_UploadDocument_UnknownComplianceType(t *testing.T) {
	f := newComplianceFixture(t)

	output, err := f.service.UploadDocument(context.Background(), usecase.UploadDocumentInput{
		AgencyID:       uuid.New(),
		ComplianceType: "fire_safety",
		ContentType:    "application/pdf",
		Size:           8,
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestComplianceService_UploadDocument_UnsupportedContentType(t *testing.T) {
	f := newComplianceFixture(t)

	output, err := f.service.UploadDocument(context.Background(), usecase.UploadDocumentInput{
		AgencyID:       uuid.New(),
		ComplianceType: "business_license",
		ContentType:    "application/zip",
		Size:           8,
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestComplianceService_UploadDocument_OversizeRejected(t *testing.T) {
	f := newComplianceFixture(t)

	output, err := f.service.UploadDocument(context.Background(), usecase.UploadDocumentInput{
		AgencyID:       uuid.New(),
		ComplianceType: "business_license",
		ContentType:    "application/pdf",
		Size:           11 << 20,
	})
	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode())
}

func TestComplianceService_UploadDocument_StorageFailureIsFatal(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	content := bytes.NewReader([]byte("%PDF-1.7"))

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID}, nil)

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceBusinessLicense).
		Return(nil, repository.ErrComplianceNotFound)

	f.storage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), content, int64(8), "application/pdf").
		Return(errors.New("bucket unreachable"))

	output, err := f.service.UploadDocument(ctx, usecase.UploadDocumentInput{
		AgencyID:       agencyID,
		ComplianceType: "business_license",
		FileName:       "license.pdf",
		ContentType:    "application/pdf",
		Size:           8,
		Content:        content,
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestComplianceService_ReviewDocument_Verify(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	reviewerID := uuid.New()
	docURL := "https://storage.example.com/bucket/ins.pdf"

	row := &entity.AgencyCompliance{
		ID:             uuid.New(),
		AgencyID:       agencyID,
		ComplianceType: entity.ComplianceLiabilityInsurance,
		DocumentURL:    &docURL,
	}

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceLiabilityInsurance).
		Return(row, nil)

	f.complianceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AgencyCompliance")).
		Run(func(ctx context.Context, updated *entity.AgencyCompliance) {
			assert.True(t, updated.IsVerified)
			require.NotNil(t, updated.VerifiedBy)
			assert.Equal(t, reviewerID, *updated.VerifiedBy)
			assert.NotNil(t, updated.VerifiedAt)
			assert.Equal(t, entity.StateVerified, updated.State())
		}).
		Return(nil)

	output, err := f.service.ReviewDocument(ctx, usecase.ReviewDocumentInput{
		AgencyID:       agencyID,
		ReviewerID:     reviewerID,
		ComplianceType: "liability_insurance",
		Action:         usecase.ReviewActionVerify,
	})
	require.NoError(t, err)
	assert.Equal(t, "Liability Insurance document verified.", output.Message)
	assert.Equal(t, entity.StateVerified, output.Compliance.State())
}

func TestComplianceService_ReviewDocument_VerifyWithoutDocument(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()

	row := &entity.AgencyCompliance{
		ID:             uuid.New(),
		AgencyID:       agencyID,
		ComplianceType: entity.ComplianceW9,
	}

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceW9).
		Return(row, nil)

	output, err := f.service.ReviewDocument(ctx, usecase.ReviewDocumentInput{
		AgencyID:       agencyID,
		ReviewerID:     uuid.New(),
		ComplianceType: "w9",
		Action:         usecase.ReviewActionVerify,
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestComplianceService_ReviewDocument_Reject(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	reviewerID := uuid.New()
	docURL := "https://storage.example.com/bucket/osha.pdf"

	agency := &entity.Agency{ID: agencyID, Name: "Crew Co", Email: "office@crewco.com"}
	row := &entity.AgencyCompliance{
		ID:             uuid.New(),
		AgencyID:       agencyID,
		ComplianceType: entity.ComplianceOSHACertification,
		DocumentURL:    &docURL,
		IsVerified:     true,
	}

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(agency, nil)

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceOSHACertification).
		Return(row, nil)

	f.storage.EXPECT().
		ObjectPath(docURL).
		Return("osha/path.pdf", true)

	f.complianceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AgencyCompliance")).
		Run(func(ctx context.Context, updated *entity.AgencyCompliance) {
			assert.Nil(t, updated.DocumentURL)
			assert.False(t, updated.IsVerified)
			assert.Nil(t, updated.VerifiedBy)
			assert.Equal(t, entity.StateNoDocument, updated.State())
		}).
		Return(nil)

	f.storage.EXPECT().
		Remove(ctx, "osha/path.pdf").
		Return(nil)

	f.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("service.MailMessage")).
		Return(nil)

	output, err := f.service.ReviewDocument(ctx, usecase.ReviewDocumentInput{
		AgencyID:       agencyID,
		ReviewerID:     reviewerID,
		ComplianceType: "osha_certification",
		Action:         usecase.ReviewActionReject,
		Reason:         "The certificate expired in March 2025.",
	})
	require.NoError(t, err)
	assert.Equal(t, "OSHA Certification document rejected and the agency was notified by email.", output.Message)
}

func TestComplianceService_ReviewDocument_RejectEmailFailureReported(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	docURL := "https://storage.example.com/bucket/license.pdf"

	agency := &entity.Agency{ID: agencyID, Name: "Crew Co", Email: "office@crewco.com"}
	row := &entity.AgencyCompliance{
		ID:             uuid.New(),
		AgencyID:       agencyID,
		ComplianceType: entity.ComplianceBusinessLicense,
		DocumentURL:    &docURL,
	}

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(agency, nil)

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceBusinessLicense).
		Return(row, nil)

	f.storage.EXPECT().
		ObjectPath(docURL).
		Return("license/path.pdf", true)

	f.complianceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AgencyCompliance")).
		Return(nil)

	f.storage.EXPECT().
		Remove(ctx, "license/path.pdf").
		Return(nil)

	f.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("service.MailMessage")).
		Return(errors.New("smtp connect timeout"))

	output, err := f.service.ReviewDocument(ctx, usecase.ReviewDocumentInput{
		AgencyID:       agencyID,
		ReviewerID:     uuid.New(),
		ComplianceType: "business_license",
		Action:         usecase.ReviewActionReject,
		Reason:         "Document is illegible, please rescan.",
	})
	require.NoError(t, err)
	assert.Equal(t, "Business License document rejected; the agency could not be notified by email.", output.Message)
}

func TestComplianceService_ReviewDocument_RejectShortReason(t *testing.T) {
	f := newComplianceFixture(t)

	output, err := f.service.ReviewDocument(context.Background(), usecase.ReviewDocumentInput{
		AgencyID:       uuid.New(),
		ReviewerID:     uuid.New(),
		ComplianceType: "business_license",
		Action:         usecase.ReviewActionReject,
		Reason:         "   bad    ",
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestComplianceService_ReviewDocument_RejectUpdateFailureIsFatal(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	docURL := "https://storage.example.com/bucket/wc.pdf"

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID, Email: "office@crewco.com"}, nil)

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceWorkersComp).
		Return(&entity.AgencyCompliance{
			ID:             uuid.New(),
			AgencyID:       agencyID,
			ComplianceType: entity.ComplianceWorkersComp,
			DocumentURL:    &docURL,
		}, nil)

	f.storage.EXPECT().
		ObjectPath(docURL).
		Return("wc/path.pdf", true)

	f.complianceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AgencyCompliance")).
		Return(errors.New("deadlock detected"))

	output, err := f.service.ReviewDocument(ctx, usecase.ReviewDocumentInput{
		AgencyID:       agencyID,
		ReviewerID:     uuid.New(),
		ComplianceType: "workers_comp",
		Action:         usecase.ReviewActionReject,
		Reason:         "Coverage amount is below the required minimum.",
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestComplianceService_ReviewDocument_UnknownAction(t *testing.T) {
	f := newComplianceFixture(t)

	output, err := f.service.ReviewDocument(context.Background(), usecase.ReviewDocumentInput{
		AgencyID:       uuid.New(),
		ComplianceType: "w9",
		Action:         "approve",
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestComplianceService_DeleteDocument(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	docURL := "https://storage.example.com/bucket/w9.pdf"

	row := &entity.AgencyCompliance{
		ID:             uuid.New(),
		AgencyID:       agencyID,
		ComplianceType: entity.ComplianceW9,
		DocumentURL:    &docURL,
		IsVerified:     true,
		IsActive:       true,
	}

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceW9).
		Return(row, nil)

	f.storage.EXPECT().
		ObjectPath(docURL).
		Return("w9/path.pdf", true)

	f.storage.EXPECT().
		Remove(ctx, "w9/path.pdf").
		Return(nil)

	f.complianceRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.AgencyCompliance")).
		Run(func(ctx context.Context, updated *entity.AgencyCompliance) {
			assert.Nil(t, updated.DocumentURL)
			assert.False(t, updated.IsVerified)
			assert.True(t, updated.IsActive)
		}).
		Return(nil)

	err := f.service.DeleteDocument(ctx, usecase.DeleteDocumentInput{
		AgencyID:       agencyID,
		ComplianceType: "w9",
	})
	require.NoError(t, err)
}

func TestComplianceService_DeleteDocument_NoRow(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()

	f.complianceRepo.EXPECT().
		FindByAgencyAndType(ctx, agencyID, entity.ComplianceW9).
		Return(nil, repository.ErrComplianceNotFound)

	err := f.service.DeleteDocument(ctx, usecase.DeleteDocumentInput{
		AgencyID:       agencyID,
		ComplianceType: "w9",
	})
	require.Error(t, err)
}

func TestComplianceService_ListCompliance(t *testing.T) {
	f := newComplianceFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()

	rows := []*entity.AgencyCompliance{
		{ID: uuid.New(), AgencyID: agencyID, ComplianceType: entity.ComplianceBusinessLicense},
		{ID: uuid.New(), AgencyID: agencyID, ComplianceType: entity.ComplianceW9},
	}

	f.complianceRepo.EXPECT().
		FindByAgency(ctx, agencyID).
		Return(rows, nil)

	got, err := f.service.ListCompliance(ctx, agencyID)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestObjectPath(t *testing.T) {
	agencyID := uuid.MustParse("0190c2a0-0000-7000-8000-000000000000")
	at := time.UnixMilli(1724800000000)

	tests := []struct {
		name        string
		fileName    string
		contentType string
		want        string
	}{
		{
			name:        "extension from filename",
			fileName:    "License.PDF",
			contentType: "application/pdf",
			want:        "0190c2a0-0000-7000-8000-000000000000/business_license/1724800000000.pdf",
		},
		{
			name:        "extension from content type",
			fileName:    "scan",
			contentType: "image/png",
			want:        "0190c2a0-0000-7000-8000-000000000000/business_license/1724800000000.png",
		},
		{
			name:        "pdf fallback",
			fileName:    "",
			contentType: "application/octet-stream",
			want:        "0190c2a0-0000-7000-8000-000000000000/business_license/1724800000000.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := objectPath(agencyID, entity.ComplianceBusinessLicense, at, tt.fileName, tt.contentType)
			assert.Equal(t, tt.want, got)
		})
	}
}
