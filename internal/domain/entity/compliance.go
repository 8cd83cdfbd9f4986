package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ComplianceType enumerates the compliance documents an agency can file.
type ComplianceType string

const (
	ComplianceBusinessLicense    ComplianceType = "business_license"
	ComplianceLiabilityInsurance ComplianceType = "liability_insurance"
	ComplianceWorkersComp        ComplianceType = "workers_comp"
	ComplianceOSHACertification  ComplianceType = "osha_certification"
	ComplianceW9                 ComplianceType = "w9"
)

// ParseComplianceType validates a caller-supplied compliance type string.
func ParseComplianceType(value string) (ComplianceType, bool) {
	switch ComplianceType(value) {
	case ComplianceBusinessLicense, ComplianceLiabilityInsurance, ComplianceWorkersComp,
		ComplianceOSHACertification, ComplianceW9:
		return ComplianceType(value), true
	default:
		return "", false
	}
}

// DisplayName returns the human-readable name used in notifications.
func (t ComplianceType) DisplayName() string {
	switch t {
	case ComplianceBusinessLicense:
		return "Business License"
	case ComplianceLiabilityInsurance:
		return "Liability Insurance"
	case ComplianceWorkersComp:
		return "Workers' Compensation"
	case ComplianceOSHACertification:
		return "OSHA Certification"
	case ComplianceW9:
		return "W-9"
	default:
		return string(t)
	}
}

// ComplianceState is the explicit lifecycle state of a compliance record,
// derived from the row rather than stored. A rejected document lands back in
// StateNoDocument; the UX distinguishes a rejection only by recency of
// UpdatedAt and the notes left by the reviewer.
type ComplianceState string

const (
	StateNoDocument    ComplianceState = "no_document"
	StatePendingReview ComplianceState = "pending_review"
	StateVerified      ComplianceState = "verified"
)

// Transition guard errors. The lifecycle manager maps these to validation
// failures for the caller.
var (
	ErrNoDocumentToReview = errors.New("no document on file to review")
	ErrNoDocumentToReject = errors.New("no document on file to reject")
)

// AgencyCompliance is the relational status record of one compliance document
// for one (agency, compliance type) pair. At most one row exists per pair;
// rejection clears the document reference but preserves the row.
type AgencyCompliance struct {
	ID             uuid.UUID      `json:"id"`
	AgencyID       uuid.UUID      `json:"agency_id"`
	ComplianceType ComplianceType `json:"compliance_type"`
	DocumentURL    *string        `json:"document_url"`
	IsVerified     bool           `json:"is_verified"`
	VerifiedBy     *uuid.UUID     `json:"verified_by"`
	VerifiedAt     *time.Time     `json:"verified_at"`
	IsActive       bool           `json:"is_active"`
	Notes          *string        `json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// State derives the explicit lifecycle state from the row. The transition
// methods below are the only legal way to mutate the lifecycle fields, which
// keeps illegal combinations (verified with no document) unconstructable.
func (c *AgencyCompliance) State() ComplianceState {
	switch {
	case c.DocumentURL == nil:
		return StateNoDocument
	case c.IsVerified:
		return StateVerified
	default:
		return StatePendingReview
	}
}

// ApplyUpload records a freshly stored document. Legal from every state; a
// replacement overwrites only the document reference. The verified flag is
// deliberately left untouched on re-upload over a verified document.
func (c *AgencyCompliance) ApplyUpload(documentURL string) {
	c.DocumentURL = &documentURL
}

// ApplyVerify marks the document on file as verified. Legal whenever a
// document is present; notes are replaced only when the reviewer supplied new
// ones.
func (c *AgencyCompliance) ApplyVerify(reviewerID uuid.UUID, at time.Time, notes *string) error {
	if c.State() == StateNoDocument {
		return ErrNoDocumentToReview
	}

	c.IsVerified = true
	c.VerifiedBy = &reviewerID
	c.VerifiedAt = &at
	if notes != nil {
		c.Notes = notes
	}

	return nil
}

// ApplyReject clears the document and any verification, leaving the row in
// the no-document state with the reviewer's notes.
func (c *AgencyCompliance) ApplyReject(notes *string) error {
	if c.State() == StateNoDocument {
		return ErrNoDocumentToReject
	}

	c.DocumentURL = nil
	c.IsVerified = false
	c.VerifiedBy = nil
	c.VerifiedAt = nil
	c.Notes = notes

	return nil
}

// ApplyDelete removes the document reference. The active flag is untouched;
// verification is cleared alongside the document so that a verified row can
// never point at nothing.
func (c *AgencyCompliance) ApplyDelete() {
	c.DocumentURL = nil
	c.IsVerified = false
	c.VerifiedBy = nil
	c.VerifiedAt = nil
}
