package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crewdir/internal/delivery/http/validator"
	"crewdir/internal/domain/entity"
	mockUC "crewdir/internal/mocks/usecase"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdateContext(t *testing.T, agencyID string, body string, editorID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPatch, "/admin/agencies/"+agencyID, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(agencyID)
	if editorID != nil {
		c.Set("userID", *editorID)
	}

	return c, rec
}

func TestAgencyAdminHandler_UpdateAgency_ScalarsOnly(t *testing.T) {
	mockAdminUC := mockUC.NewMockAgencyAdminUsecase(t)
	handler := &AgencyAdminHandler{agencyAdminUC: mockAdminUC, logger: slog.Default()}

	agencyID := uuid.New()
	editorID := uuid.New()

	mockAdminUC.EXPECT().
		UpdateAgency(mock.Anything, mock.AnythingOfType("usecase.UpdateAgencyInput")).
		Run(func(ctx context.Context, input usecase.UpdateAgencyInput) {
			assert.Equal(t, agencyID, input.AgencyID)
			assert.Equal(t, editorID, input.EditorID)
			require.NotNil(t, input.Name)
			assert.Equal(t, "Lone Star Crews", *input.Name)
			assert.Nil(t, input.TradeIDs)
			assert.Nil(t, input.RegionIDs)
		}).
		Return(&usecase.UpdateAgencyOutput{
			Agency: &entity.Agency{ID: agencyID, Name: "Lone Star Crews"},
		}, nil)

	c, rec := newUpdateContext(t, agencyID.String(), `{"name":"Lone Star Crews"}`, &editorID)

	require.NoError(t, handler.UpdateAgency(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Lone Star Crews")
	// Untouched relations must be absent, not empty arrays.
	assert.NotContains(t, body, `"trades"`)
	assert.NotContains(t, body, `"regions"`)
}

func TestAgencyAdminHandler_UpdateAgency_IncludesRequestedRelations(t *testing.T) {
	mockAdminUC := mockUC.NewMockAgencyAdminUsecase(t)
	handler := &AgencyAdminHandler{agencyAdminUC: mockAdminUC, logger: slog.Default()}

	agencyID := uuid.New()
	editorID := uuid.New()
	tradeID := uuid.New()

	trades := []*entity.Reference{{ID: tradeID, Name: "Electrical", Slug: "electrical"}}

	mockAdminUC.EXPECT().
		UpdateAgency(mock.Anything, mock.AnythingOfType("usecase.UpdateAgencyInput")).
		Return(&usecase.UpdateAgencyOutput{
			Agency: &entity.Agency{ID: agencyID},
			Trades: &trades,
		}, nil)

	c, rec := newUpdateContext(t, agencyID.String(),
		`{"trade_ids":["`+tradeID.String()+`"]}`, &editorID)

	require.NoError(t, handler.UpdateAgency(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"trades"`)
	assert.Contains(t, body, "Electrical")
	assert.NotContains(t, body, `"regions"`)
}

func TestAgencyAdminHandler_UpdateAgency_MissingIdentity(t *testing.T) {
	mockAdminUC := mockUC.NewMockAgencyAdminUsecase(t)
	handler := &AgencyAdminHandler{agencyAdminUC: mockAdminUC, logger: slog.Default()}

	c, rec := newUpdateContext(t, uuid.New().String(), `{"name":"Crew Co"}`, nil)

	require.NoError(t, handler.UpdateAgency(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAgencyAdminHandler_UpdateAgency_InvalidAgencyID(t *testing.T) {
	mockAdminUC := mockUC.NewMockAgencyAdminUsecase(t)
	handler := &AgencyAdminHandler{agencyAdminUC: mockAdminUC, logger: slog.Default()}

	editorID := uuid.New()
	c, rec := newUpdateContext(t, "not-a-uuid", `{"name":"Crew Co"}`, &editorID)

	require.NoError(t, handler.UpdateAgency(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgencyAdminHandler_UpdateAgency_InvalidEmail(t *testing.T) {
	mockAdminUC := mockUC.NewMockAgencyAdminUsecase(t)
	handler := &AgencyAdminHandler{agencyAdminUC: mockAdminUC, logger: slog.Default()}

	editorID := uuid.New()
	c, rec := newUpdateContext(t, uuid.New().String(), `{"email":"not-an-email"}`, &editorID)

	require.NoError(t, handler.UpdateAgency(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgencyAdminHandler_GetEditHistory(t *testing.T) {
	mockAdminUC := mockUC.NewMockAgencyAdminUsecase(t)
	handler := &AgencyAdminHandler{agencyAdminUC: mockAdminUC, logger: slog.Default()}

	agencyID := uuid.New()

	mockAdminUC.EXPECT().
		GetEditHistory(mock.Anything, agencyID, 25).
		Return([]*entity.AgencyProfileEdit{
			{ID: uuid.New(), AgencyID: agencyID, FieldName: "trades"},
		}, nil)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/agencies/"+agencyID.String()+"/edits?limit=25", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(agencyID.String())

	require.NoError(t, handler.GetEditHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"trades"`)
}
