package repository

import (
	"context"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// MembershipRepository manages the join rows of an agency's many-to-many
// relations (agency_trades, agency_regions). Rows are created and deleted
// only through the reconciler; uniqueness of the (agency, reference) pair is
// enforced by the store's own constraint via upsert-on-conflict.
type MembershipRepository interface {
	// CurrentIDs returns the reference IDs currently joined to the agency.
	CurrentIDs(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind) ([]uuid.UUID, error)

	// Upsert asserts one join row per reference ID, keyed by the
	// (agency, reference) pair so that re-asserting an existing membership
	// is a no-op rather than a duplicate or conflict.
	Upsert(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind, refIDs []uuid.UUID) error

	// Delete removes exactly the given join rows, scoped by agency.
	Delete(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind, refIDs []uuid.UUID) error
}
