package handler

import (
	"log/slog"
	"net/http"

	"crewdir/internal/delivery/http/middleware"
	"crewdir/internal/delivery/http/response"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AgencyAdminHandlerParams holds dependencies for AgencyAdminHandler, injected by Fx.
type AgencyAdminHandlerParams struct {
	fx.In

	AgencyAdminUC usecase.AgencyAdminUsecase
	Logger        *slog.Logger
}

// AgencyAdminHandler handles the admin partial-update surface of an agency.
type AgencyAdminHandler struct {
	agencyAdminUC usecase.AgencyAdminUsecase
	logger        *slog.Logger
}

// NewAgencyAdminHandler is the constructor for AgencyAdminHandler
func NewAgencyAdminHandler(params AgencyAdminHandlerParams) *AgencyAdminHandler {
	return &AgencyAdminHandler{
		agencyAdminUC: params.AgencyAdminUC,
		logger:        params.Logger,
	}
}

// UpdateAgencyRequest represents the sparse admin edit body. Absent keys are
// left nil and are not part of the update.
type UpdateAgencyRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	About       *string `json:"about"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Website     *string `json:"website" validate:"omitempty,url"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,min=1800,max=2100"`
	SizeClass   *string `json:"size_class"`
	IsActive    *bool   `json:"is_active"`
	IsFeatured  *bool   `json:"is_featured"`
	IsClaimed   *bool   `json:"is_claimed"`

	TradeIDs  *[]uuid.UUID `json:"trade_ids"`
	RegionIDs *[]uuid.UUID `json:"region_ids"`
}

// UpdateAgencyResponse mirrors the update result. Relation keys appear only
// when the relation was part of the request.
type UpdateAgencyResponse struct {
	Agency  any `json:"agency"`
	Trades  any `json:"trades,omitempty"`
	Regions any `json:"regions,omitempty"`
}

// UpdateAgency handles the sparse partial update of an agency profile
func (h *AgencyAdminHandler) UpdateAgency(c echo.Context) error {
	editorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	agencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agency ID")
	}

	var req UpdateAgencyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.agencyAdminUC.UpdateAgency(c.Request().Context(), usecase.UpdateAgencyInput{
		AgencyID:    agencyID,
		EditorID:    editorID,
		Name:        req.Name,
		About:       req.About,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		FoundedYear: req.FoundedYear,
		SizeClass:   req.SizeClass,
		IsActive:    req.IsActive,
		IsFeatured:  req.IsFeatured,
		IsClaimed:   req.IsClaimed,
		TradeIDs:    req.TradeIDs,
		RegionIDs:   req.RegionIDs,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	resp := UpdateAgencyResponse{Agency: output.Agency}
	if output.Trades != nil {
		resp.Trades = *output.Trades
	}
	if output.Regions != nil {
		resp.Regions = *output.Regions
	}

	return response.Success(c, http.StatusOK, resp, "Agency updated successfully")
}

// GetEditHistoryRequest represents the query parameters of the audit listing
type GetEditHistoryRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=200"`
}

// GetEditHistory handles reading the agency's audit trail, newest first
func (h *AgencyAdminHandler) GetEditHistory(c echo.Context) error {
	agencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agency ID")
	}

	var req GetEditHistoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid history parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid history parameters")
	}

	edits, err := h.agencyAdminUC.GetEditHistory(c.Request().Context(), agencyID, req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, edits, "Edit history retrieved successfully")
}
