package repository

import (
	"context"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ComplianceRepository persists the per-(agency, compliance type) status
// rows. Rows are created lazily via Upsert on first upload or review and are
// never hard-deleted by the engine.
type ComplianceRepository interface {
	// FindByAgencyAndType returns ErrComplianceNotFound when no row exists.
	FindByAgencyAndType(ctx context.Context, agencyID uuid.UUID, complianceType entity.ComplianceType) (*entity.AgencyCompliance, error)

	// FindByAgency returns all compliance rows of an agency ordered by type.
	FindByAgency(ctx context.Context, agencyID uuid.UUID) ([]*entity.AgencyCompliance, error)

	// Upsert inserts or updates the row keyed by the
	// (agency_id, compliance_type) uniqueness constraint.
	Upsert(ctx context.Context, compliance *entity.AgencyCompliance) error

	// Update persists changes to an existing row.
	Update(ctx context.Context, compliance *entity.AgencyCompliance) error
}
