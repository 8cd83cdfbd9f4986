package usecase

import (
	"context"

	"crewdir/internal/domain/entity"
	"crewdir/internal/domain/repository"

	"github.com/google/uuid"
)

// AgencyProfile is an agency together with its relation memberships, as shown
// on the public profile page.
type AgencyProfile struct {
	Agency  *entity.Agency      `json:"agency"`
	Trades  []*entity.Reference `json:"trades"`
	Regions []*entity.Reference `json:"regions"`
}

// DirectoryUsecase serves the public read-only directory surface.
type DirectoryUsecase interface {
	ListAgencies(ctx context.Context, filter repository.AgencyListFilter) ([]*entity.Agency, error)
	GetAgency(ctx context.Context, id uuid.UUID) (*AgencyProfile, error)
	GetAgencyBySlug(ctx context.Context, slug string) (*AgencyProfile, error)
	ListTrades(ctx context.Context) ([]*entity.Trade, error)
	ListRegions(ctx context.Context) ([]*entity.Region, error)
}
