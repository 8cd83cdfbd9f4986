package impl

import (
	"context"
	"testing"

	"crewdir/internal/domain/entity"
	"crewdir/internal/domain/repository"
	mockRepo "crewdir/internal/mocks/repository"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type directoryFixture struct {
	agencyRepo *mockRepo.MockAgencyRepository
	tradeRepo  *mockRepo.MockTradeRepository
	regionRepo *mockRepo.MockRegionRepository
	refRepo    *mockRepo.MockReferenceRepository
	memberRepo *mockRepo.MockMembershipRepository
	service    usecase.DirectoryUsecase
}

func newDirectoryFixture(t *testing.T) *directoryFixture {
	f := &directoryFixture{
		agencyRepo: mockRepo.NewMockAgencyRepository(t),
		tradeRepo:  mockRepo.NewMockTradeRepository(t),
		regionRepo: mockRepo.NewMockRegionRepository(t),
		refRepo:    mockRepo.NewMockReferenceRepository(t),
		memberRepo: mockRepo.NewMockMembershipRepository(t),
	}
	f.service = NewDirectoryService(
		f.agencyRepo, f.tradeRepo, f.regionRepo, f.refRepo, f.memberRepo,
		newTestLogger(),
	)

	return f
}

func TestDirectoryService_ListAgencies_DefaultLimit(t *testing.T) {
	f := newDirectoryFixture(t)

	ctx := context.Background()
	agencies := []*entity.Agency{{ID: uuid.New(), Name: "Crew Co"}}

	f.agencyRepo.EXPECT().
		List(ctx, repository.AgencyListFilter{TradeSlug: "electrical", Limit: defaultListLimit}).
		Return(agencies, nil)

	got, err := f.service.ListAgencies(ctx, repository.AgencyListFilter{TradeSlug: "electrical"})
	require.NoError(t, err)
	assert.Equal(t, agencies, got)
}

func TestDirectoryService_GetAgency(t *testing.T) {
	f := newDirectoryFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	tradeID := uuid.New()

	agency := &entity.Agency{ID: agencyID, Name: "Crew Co"}
	trades := []*entity.Reference{{ID: tradeID, Name: "Electrical", Slug: "electrical"}}

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(agency, nil)

	f.memberRepo.EXPECT().
		CurrentIDs(ctx, agencyID, entity.RelationTrades).
		Return([]uuid.UUID{tradeID}, nil)

	f.refRepo.EXPECT().
		FindByIDs(ctx, entity.RelationTrades, []uuid.UUID{tradeID}).
		Return(trades, nil)

	f.memberRepo.EXPECT().
		CurrentIDs(ctx, agencyID, entity.RelationRegions).
		Return([]uuid.UUID{}, nil)

	f.refRepo.EXPECT().
		FindByIDs(ctx, entity.RelationRegions, []uuid.UUID{}).
		Return([]*entity.Reference{}, nil)

	profile, err := f.service.GetAgency(ctx, agencyID)
	require.NoError(t, err)
	assert.Equal(t, agency, profile.Agency)
	assert.Equal(t, trades, profile.Trades)
	assert.Empty(t, profile.Regions)
}

func TestDirectoryService_GetAgency_NotFound(t *testing.T) {
	f := newDirectoryFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()

	f.agencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(nil, repository.ErrAgencyNotFound)

	profile, err := f.service.GetAgency(ctx, agencyID)
	require.Error(t, err)
	assert.Nil(t, profile)
}

func TestDirectoryService_GetAgencyBySlug(t *testing.T) {
	f := newDirectoryFixture(t)

	ctx := context.Background()
	agencyID := uuid.New()
	agency := &entity.Agency{ID: agencyID, Name: "Crew Co", Slug: "crew-co"}

	f.agencyRepo.EXPECT().
		FindBySlug(ctx, "crew-co").
		Return(agency, nil)

	f.memberRepo.EXPECT().
		CurrentIDs(ctx, agencyID, entity.RelationTrades).
		Return([]uuid.UUID{}, nil)

	f.refRepo.EXPECT().
		FindByIDs(ctx, entity.RelationTrades, []uuid.UUID{}).
		Return([]*entity.Reference{}, nil)

	f.memberRepo.EXPECT().
		CurrentIDs(ctx, agencyID, entity.RelationRegions).
		Return([]uuid.UUID{}, nil)

	f.refRepo.EXPECT().
		FindByIDs(ctx, entity.RelationRegions, []uuid.UUID{}).
		Return([]*entity.Reference{}, nil)

	profile, err := f.service.GetAgencyBySlug(ctx, "crew-co")
	require.NoError(t, err)
	assert.Equal(t, agency, profile.Agency)
}

func TestDirectoryService_ListTrades(t *testing.T) {
	f := newDirectoryFixture(t)

	ctx := context.Background()
	trades := []*entity.Trade{{ID: uuid.New(), Name: "Electrical", Slug: "electrical"}}

	f.tradeRepo.EXPECT().
		FindAll(ctx).
		Return(trades, nil)

	got, err := f.service.ListTrades(ctx)
	require.NoError(t, err)
	assert.Equal(t, trades, got)
}

func TestDirectoryService_ListRegions(t *testing.T) {
	f := newDirectoryFixture(t)

	ctx := context.Background()
	regions := []*entity.Region{{ID: uuid.New(), Name: "Austin Metro", Slug: "austin-metro", StateCode: "TX"}}

	f.regionRepo.EXPECT().
		FindAll(ctx).
		Return(regions, nil)

	got, err := f.service.ListRegions(ctx)
	require.NoError(t, err)
	assert.Equal(t, regions, got)
}
