package repository

import (
	"context"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileEditRepository appends and reads the immutable audit trail of admin
// edits. Rows are never updated or deleted.
type ProfileEditRepository interface {
	Create(ctx context.Context, edit *entity.AgencyProfileEdit) error

	// ListByAgency returns the audit trail newest-first.
	ListByAgency(ctx context.Context, agencyID uuid.UUID, limit int) ([]*entity.AgencyProfileEdit, error)
}
