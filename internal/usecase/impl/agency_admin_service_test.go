package impl

import (
	"context"
	"testing"
	"time"

	"crewdir/internal/domain/entity"
	"crewdir/internal/domain/repository"
	mockRepo "crewdir/internal/mocks/repository"
	mockUC "crewdir/internal/mocks/usecase"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func idsPtr(ids ...uuid.UUID) *[]uuid.UUID {
	out := append([]uuid.UUID{}, ids...)
	return &out
}

func TestAgencyAdminService_UpdateAgency_ScalarsOnly(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()
	editorID := uuid.New()

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID, Name: "Old Name", SizeClass: entity.SizeClassSmall}, nil)

	mockAgencyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Agency")).
		Run(func(ctx context.Context, agency *entity.Agency) {
			assert.Equal(t, "Lone Star Crews", agency.Name)
			assert.Equal(t, "hiring@lonestarcrews.com", agency.Email)
			require.NotNil(t, agency.LastEditedBy)
			assert.Equal(t, editorID, *agency.LastEditedBy)
			assert.NotNil(t, agency.LastEditedAt)
		}).
		Return(nil)

	output, err := service.UpdateAgency(ctx, usecase.UpdateAgencyInput{
		AgencyID: agencyID,
		EditorID: editorID,
		Name:     strPtr("Lone Star Crews"),
		Email:    strPtr("hiring@lonestarcrews.com"),
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Lone Star Crews", output.Agency.Name)
	assert.Nil(t, output.Trades)
	assert.Nil(t, output.Regions)
}

func TestAgencyAdminService_UpdateAgency_RelationsOnlyTouchesAudit(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()
	editorID := uuid.New()
	tradeID := uuid.New()

	members := []*entity.Reference{{ID: tradeID, Name: "Welding", Slug: "welding"}}

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID, Name: "Crew Co"}, nil)

	mockReconciler.EXPECT().
		Reconcile(ctx, agencyID, entity.RelationTrades, []uuid.UUID{tradeID}, editorID).
		Return(&usecase.ReconcileResult{Members: members, AuditWritten: true}, nil)

	mockAgencyRepo.EXPECT().
		TouchLastEdited(ctx, agencyID, editorID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := service.UpdateAgency(ctx, usecase.UpdateAgencyInput{
		AgencyID: agencyID,
		EditorID: editorID,
		TradeIDs: idsPtr(tradeID),
	})
	require.NoError(t, err)
	require.NotNil(t, output.Trades)
	assert.Equal(t, members, *output.Trades)
	assert.Nil(t, output.Regions)
	require.NotNil(t, output.Agency.LastEditedBy)
	assert.Equal(t, editorID, *output.Agency.LastEditedBy)
}

func TestAgencyAdminService_UpdateAgency_ScalarsAndBothRelations(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()
	editorID := uuid.New()
	tradeID := uuid.New()
	regionID := uuid.New()

	trades := []*entity.Reference{{ID: tradeID, Name: "HVAC", Slug: "hvac"}}
	regions := []*entity.Reference{{ID: regionID, Name: "Houston Metro", Slug: "houston-metro"}}

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID, Name: "Crew Co"}, nil)

	mockAgencyRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Agency")).
		Return(nil)

	mockReconciler.EXPECT().
		Reconcile(ctx, agencyID, entity.RelationTrades, []uuid.UUID{tradeID}, editorID).
		Return(&usecase.ReconcileResult{Members: trades, AuditWritten: true}, nil)

	mockReconciler.EXPECT().
		Reconcile(ctx, agencyID, entity.RelationRegions, []uuid.UUID{regionID}, editorID).
		Return(&usecase.ReconcileResult{Members: regions, AuditWritten: true}, nil)

	output, err := service.UpdateAgency(ctx, usecase.UpdateAgencyInput{
		AgencyID:  agencyID,
		EditorID:  editorID,
		About:     strPtr("Skilled trade staffing across Texas."),
		TradeIDs:  idsPtr(tradeID),
		RegionIDs: idsPtr(regionID),
	})
	require.NoError(t, err)
	require.NotNil(t, output.Trades)
	require.NotNil(t, output.Regions)
	assert.Equal(t, trades, *output.Trades)
	assert.Equal(t, regions, *output.Regions)
	assert.Equal(t, "Skilled trade staffing across Texas.", output.Agency.About)
}

func TestAgencyAdminService_UpdateAgency_EmptyRelationClears(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()
	editorID := uuid.New()

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID}, nil)

	mockReconciler.EXPECT().
		Reconcile(ctx, agencyID, entity.RelationRegions, []uuid.UUID{}, editorID).
		Return(&usecase.ReconcileResult{Members: []*entity.Reference{}, AuditWritten: true}, nil)

	mockAgencyRepo.EXPECT().
		TouchLastEdited(ctx, agencyID, editorID, mock.AnythingOfType("time.Time")).
		Return(nil)

	output, err := service.UpdateAgency(ctx, usecase.UpdateAgencyInput{
		AgencyID:  agencyID,
		EditorID:  editorID,
		RegionIDs: idsPtr(),
	})
	require.NoError(t, err)
	require.NotNil(t, output.Regions)
	assert.Empty(t, *output.Regions)
}

func TestAgencyAdminService_UpdateAgency_NoFieldsRejected(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	output, err := service.UpdateAgency(context.Background(), usecase.UpdateAgencyInput{
		AgencyID: uuid.New(),
		EditorID: uuid.New(),
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAgencyAdminService_UpdateAgency_UnknownSizeClassRejected(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	output, err := service.UpdateAgency(context.Background(), usecase.UpdateAgencyInput{
		AgencyID:  uuid.New(),
		EditorID:  uuid.New(),
		SizeClass: strPtr("gigantic"),
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAgencyAdminService_UpdateAgency_AgencyNotFound(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(nil, repository.ErrAgencyNotFound)

	output, err := service.UpdateAgency(ctx, usecase.UpdateAgencyInput{
		AgencyID: agencyID,
		EditorID: uuid.New(),
		Name:     strPtr("Anything"),
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAgencyAdminService_UpdateAgency_ReconcileErrorPropagates(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()
	editorID := uuid.New()
	tradeID := uuid.New()

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID}, nil)

	mockReconciler.EXPECT().
		Reconcile(ctx, agencyID, entity.RelationTrades, []uuid.UUID{tradeID}, editorID).
		Return(nil, errors.New("membership write failed"))

	output, err := service.UpdateAgency(ctx, usecase.UpdateAgencyInput{
		AgencyID: agencyID,
		EditorID: editorID,
		TradeIDs: idsPtr(tradeID),
	})
	require.Error(t, err)
	assert.Nil(t, output)
}

func TestAgencyAdminService_GetEditHistory(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()

	edits := []*entity.AgencyProfileEdit{
		{
			ID:        uuid.New(),
			AgencyID:  agencyID,
			EditorID:  uuid.New(),
			FieldName: "trades",
			OldValue:  []string{"Plumbing"},
			NewValue:  []string{"Plumbing", "Electrical"},
			CreatedAt: time.Now(),
		},
	}

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(&entity.Agency{ID: agencyID}, nil)

	mockEditRepo.EXPECT().
		ListByAgency(ctx, agencyID, 50).
		Return(edits, nil)

	got, err := service.GetEditHistory(ctx, agencyID, 50)
	require.NoError(t, err)
	assert.Equal(t, edits, got)
}

func TestAgencyAdminService_GetEditHistory_AgencyNotFound(t *testing.T) {
	mockAgencyRepo := mockRepo.NewMockAgencyRepository(t)
	mockEditRepo := mockRepo.NewMockProfileEditRepository(t)
	mockReconciler := mockUC.NewMockReconcilerUsecase(t)
	service := NewAgencyAdminService(mockAgencyRepo, mockEditRepo, mockReconciler, newTestLogger())

	ctx := context.Background()
	agencyID := uuid.New()

	mockAgencyRepo.EXPECT().
		FindByID(ctx, agencyID).
		Return(nil, repository.ErrAgencyNotFound)

	got, err := service.GetEditHistory(ctx, agencyID, 50)
	require.Error(t, err)
	assert.Nil(t, got)
}
