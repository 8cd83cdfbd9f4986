package impl

import (
	"context"
	"log/slog"

	"crewdir/internal/domain/entity"
	domainerrors "crewdir/internal/domain/errors"
	"crewdir/internal/domain/repository"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultListLimit = 50

// directoryService implements the DirectoryUsecase interface for the public
// read-only directory pages.
type directoryService struct {
	agencyRepo repository.AgencyRepository
	tradeRepo  repository.TradeRepository
	regionRepo repository.RegionRepository
	refRepo    repository.ReferenceRepository
	memberRepo repository.MembershipRepository
	logger     *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(
	agencyRepo repository.AgencyRepository,
	tradeRepo repository.TradeRepository,
	regionRepo repository.RegionRepository,
	refRepo repository.ReferenceRepository,
	memberRepo repository.MembershipRepository,
	logger *slog.Logger,
) usecase.DirectoryUsecase {
	return &directoryService{
		agencyRepo: agencyRepo,
		tradeRepo:  tradeRepo,
		regionRepo: regionRepo,
		refRepo:    refRepo,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// ListAgencies returns active agencies matching the filter.
func (srv *directoryService) ListAgencies(ctx context.Context, filter repository.AgencyListFilter) ([]*entity.Agency, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	agencies, err := srv.agencyRepo.List(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list agencies")
	}

	return agencies, nil
}

// GetAgency returns one agency with its trade and region memberships.
func (srv *directoryService) GetAgency(ctx context.Context, id uuid.UUID) (*usecase.AgencyProfile, error) {
	agency, err := srv.agencyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, domainerrors.ErrAgencyNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find agency")
	}

	return srv.profile(ctx, agency)
}

// GetAgencyBySlug returns one agency by its public slug.
func (srv *directoryService) GetAgencyBySlug(ctx context.Context, slug string) (*usecase.AgencyProfile, error) {
	agency, err := srv.agencyRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrAgencyNotFound) {
			return nil, domainerrors.ErrAgencyNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to find agency")
	}

	return srv.profile(ctx, agency)
}

func (srv *directoryService) profile(ctx context.Context, agency *entity.Agency) (*usecase.AgencyProfile, error) {
	trades, err := srv.members(ctx, agency.ID, entity.RelationTrades)
	if err != nil {
		return nil, err
	}

	regions, err := srv.members(ctx, agency.ID, entity.RelationRegions)
	if err != nil {
		return nil, err
	}

	return &usecase.AgencyProfile{
		Agency:  agency,
		Trades:  trades,
		Regions: regions,
	}, nil
}

// ListTrades returns all trade reference rows.
func (srv *directoryService) ListTrades(ctx context.Context) ([]*entity.Trade, error) {
	trades, err := srv.tradeRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list trades")
	}

	return trades, nil
}

// ListRegions returns all region reference rows.
func (srv *directoryService) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := srv.regionRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list regions")
	}

	return regions, nil
}

func (srv *directoryService) members(ctx context.Context, agencyID uuid.UUID, kind entity.RelationKind) ([]*entity.Reference, error) {
	ids, err := srv.memberRepo.CurrentIDs(ctx, agencyID, kind)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read membership")
	}

	refs, err := srv.refRepo.FindByIDs(ctx, kind, ids)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to read member names")
	}

	return refs, nil
}
