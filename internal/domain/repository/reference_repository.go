package repository

import (
	"context"

	"crewdir/internal/domain/entity"

	"github.com/google/uuid"
)

// ReferenceRepository reads the reference tables (trades, regions) through a
// relation-neutral view, so the membership reconciler has a single code path
// for both relations.
type ReferenceRepository interface {
	// FindByIDs returns the references whose IDs are in ids, ordered by
	// display name. IDs with no matching row are silently absent from the
	// result; the caller compares counts for its admission check.
	FindByIDs(ctx context.Context, kind entity.RelationKind, ids []uuid.UUID) ([]*entity.Reference, error)
}

// TradeRepository reads the trade reference table for the public directory.
type TradeRepository interface {
	FindAll(ctx context.Context) ([]*entity.Trade, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Trade, error)
}

// RegionRepository reads the region reference table for the public directory.
type RegionRepository interface {
	FindAll(ctx context.Context) ([]*entity.Region, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Region, error)
}
