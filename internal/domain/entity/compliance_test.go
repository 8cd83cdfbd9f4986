package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComplianceType(t *testing.T) {
	got, ok := ParseComplianceType("workers_comp")
	require.True(t, ok)
	assert.Equal(t, ComplianceWorkersComp, got)

	_, ok = ParseComplianceType("fire_safety")
	assert.False(t, ok)
}

func TestAgencyCompliance_State(t *testing.T) {
	url := "https://storage.example.com/bucket/doc.pdf"

	row := &AgencyCompliance{}
	assert.Equal(t, StateNoDocument, row.State())

	row.DocumentURL = &url
	assert.Equal(t, StatePendingReview, row.State())

	row.IsVerified = true
	assert.Equal(t, StateVerified, row.State())
}

func TestAgencyCompliance_ApplyUpload_PreservesVerification(t *testing.T) {
	url := "https://storage.example.com/bucket/doc.pdf"
	reviewerID := uuid.New()
	at := time.Now()

	row := &AgencyCompliance{DocumentURL: &url, IsVerified: true, VerifiedBy: &reviewerID, VerifiedAt: &at}
	row.ApplyUpload("https://storage.example.com/bucket/replacement.pdf")

	require.NotNil(t, row.DocumentURL)
	assert.Equal(t, "https://storage.example.com/bucket/replacement.pdf", *row.DocumentURL)
	assert.Equal(t, StateVerified, row.State())
}

func TestAgencyCompliance_ApplyVerify(t *testing.T) {
	url := "https://storage.example.com/bucket/doc.pdf"
	reviewerID := uuid.New()
	at := time.Now()
	notes := "Checked against the state registry."

	row := &AgencyCompliance{DocumentURL: &url}
	require.NoError(t, row.ApplyVerify(reviewerID, at, &notes))

	assert.Equal(t, StateVerified, row.State())
	require.NotNil(t, row.VerifiedBy)
	assert.Equal(t, reviewerID, *row.VerifiedBy)
	require.NotNil(t, row.VerifiedAt)
	assert.Equal(t, at, *row.VerifiedAt)
	require.NotNil(t, row.Notes)
	assert.Equal(t, notes, *row.Notes)
}

func TestAgencyCompliance_ApplyVerify_KeepsNotesWhenNoneSupplied(t *testing.T) {
	url := "https://storage.example.com/bucket/doc.pdf"
	existing := "Submitted via support ticket."

	row := &AgencyCompliance{DocumentURL: &url, Notes: &existing}
	require.NoError(t, row.ApplyVerify(uuid.New(), time.Now(), nil))

	require.NotNil(t, row.Notes)
	assert.Equal(t, existing, *row.Notes)
}

func TestAgencyCompliance_ApplyVerify_NoDocument(t *testing.T) {
	row := &AgencyCompliance{}
	err := row.ApplyVerify(uuid.New(), time.Now(), nil)
	assert.ErrorIs(t, err, ErrNoDocumentToReview)
}

func TestAgencyCompliance_ApplyReject(t *testing.T) {
	url := "https://storage.example.com/bucket/doc.pdf"
	reviewerID := uuid.New()
	at := time.Now()
	notes := "Certificate expired."

	row := &AgencyCompliance{DocumentURL: &url, IsVerified: true, VerifiedBy: &reviewerID, VerifiedAt: &at}
	require.NoError(t, row.ApplyReject(&notes))

	assert.Equal(t, StateNoDocument, row.State())
	assert.Nil(t, row.DocumentURL)
	assert.False(t, row.IsVerified)
	assert.Nil(t, row.VerifiedBy)
	assert.Nil(t, row.VerifiedAt)
	require.NotNil(t, row.Notes)
	assert.Equal(t, notes, *row.Notes)
}

func TestAgencyCompliance_ApplyReject_NoDocument(t *testing.T) {
	row := &AgencyCompliance{}
	assert.ErrorIs(t, row.ApplyReject(nil), ErrNoDocumentToReject)
}

func TestAgencyCompliance_ApplyDelete(t *testing.T) {
	url := "https://storage.example.com/bucket/doc.pdf"
	reviewerID := uuid.New()
	at := time.Now()

	row := &AgencyCompliance{DocumentURL: &url, IsVerified: true, VerifiedBy: &reviewerID, VerifiedAt: &at, IsActive: true}
	row.ApplyDelete()

	assert.Equal(t, StateNoDocument, row.State())
	assert.Nil(t, row.DocumentURL)
	assert.False(t, row.IsVerified)
	assert.True(t, row.IsActive)
}
