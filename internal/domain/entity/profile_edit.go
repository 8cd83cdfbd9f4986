package entity

import (
	"time"

	"github.com/google/uuid"
)

// AgencyProfileEdit is an append-only audit record of one admin edit to an
// agency profile field. Created once, never mutated or deleted. For relation
// edits the old and new values are the ordered display names of the
// membership before and after the call.
type AgencyProfileEdit struct {
	ID        uuid.UUID `json:"id"`
	AgencyID  uuid.UUID `json:"agency_id"`
	EditorID  uuid.UUID `json:"editor_id"`
	FieldName string    `json:"field_name"`
	OldValue  []string  `json:"old_value"`
	NewValue  []string  `json:"new_value"`
	CreatedAt time.Time `json:"created_at"`
}
