package usecase

import (
	"context"
	"io"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// Review actions accepted by ReviewDocument.
const (
	ReviewActionVerify = "verify"
	ReviewActionReject = "reject"
)

// MinRejectReasonLength is the mandatory minimum length of a rejection
// reason.
const MinRejectReasonLength = 10

// --- Input DTOs ---

// UploadDocumentInput carries one compliance document upload.
type UploadDocumentInput struct {
	AgencyID       uuid.UUID
	EditorID       uuid.UUID
	ComplianceType string
	FileName       string
	ContentType    string
	Size           int64
	Content        io.Reader
}

// ReviewDocumentInput carries a verify or reject decision.
type ReviewDocumentInput struct {
	AgencyID       uuid.UUID
	ReviewerID     uuid.UUID
	ComplianceType string
	Action         string
	Reason         string  // required for reject, >= MinRejectReasonLength
	Notes          *string // optional reviewer notes
}

// DeleteDocumentInput removes a stored document without review semantics.
type DeleteDocumentInput struct {
	AgencyID       uuid.UUID
	ComplianceType string
}

// --- Output DTOs ---

// UploadDocumentOutput returns the signed retrieval URL of the stored
// document.
type UploadDocumentOutput struct {
	DocumentURL string `json:"document_url"`
}

// ReviewDocumentOutput returns the updated status row plus a human-readable
// message whose trailing clause reports notification success or failure.
type ReviewDocumentOutput struct {
	Compliance *entity.AgencyCompliance
	Message    string
}

// ComplianceUsecase drives a per-(agency, compliance type) document through
// upload, replacement, verification and rejection, coordinating object
// storage with the relational status record.
type ComplianceUsecase interface {
	UploadDocument(ctx context.Context, input UploadDocumentInput) (*UploadDocumentOutput, error)
	ReviewDocument(ctx context.Context, input ReviewDocumentInput) (*ReviewDocumentOutput, error)
	DeleteDocument(ctx context.Context, input DeleteDocumentInput) error
	ListCompliance(ctx context.Context, agencyID uuid.UUID) ([]*entity.AgencyCompliance, error)
}
