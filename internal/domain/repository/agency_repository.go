package repository

import (
	"context"
	"time"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// AgencyListFilter narrows the public directory listing. Zero values mean
// "no constraint".
type AgencyListFilter struct {
	Query      string // case-insensitive match against the agency name
	TradeSlug  string
	RegionSlug string
	SizeClass  string
	Limit      int
	Offset     int
}

// AgencyRepository persists the agency aggregate root.
type AgencyRepository interface {
	// FindByID retrieves one agency; returns ErrAgencyNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Agency, error)

	// FindBySlug retrieves one agency by its public slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Agency, error)

	// List returns active agencies matching the filter, ordered by name.
	List(ctx context.Context, filter AgencyListFilter) ([]*entity.Agency, error)

	// Update persists the agency's mutable profile fields, including the
	// audit attribution fields.
	Update(ctx context.Context, agency *entity.Agency) error

	// TouchLastEdited stamps the audit attribution fields without touching
	// any other column. Used when a relation reconciliation was the sole
	// mutation of the enclosing request.
	TouchLastEdited(ctx context.Context, id, editorID uuid.UUID, at time.Time) error
}
