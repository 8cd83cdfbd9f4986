package handler

import (
	"log/slog"
	"net/http"

	"crewdir/internal/delivery/http/response"
	"crewdir/internal/domain/repository"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// DirectoryHandler serves the public read-only directory pages.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// ListAgenciesRequest represents the query parameters of the agency listing
type ListAgenciesRequest struct {
	Query      string `query:"q"`
	TradeSlug  string `query:"trade"`
	RegionSlug string `query:"region"`
	SizeClass  string `query:"size"`
	Limit      int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset     int    `query:"offset" validate:"omitempty,min=0"`
}

// ListAgencies handles browsing and filtering the public directory
func (h *DirectoryHandler) ListAgencies(c echo.Context) error {
	var req ListAgenciesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid listing parameters")
	}

	agencies, err := h.directoryUC.ListAgencies(c.Request().Context(), repository.AgencyListFilter{
		Query:      req.Query,
		TradeSlug:  req.TradeSlug,
		RegionSlug: req.RegionSlug,
		SizeClass:  req.SizeClass,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, agencies, "Agencies retrieved successfully")
}

// GetAgency handles the public profile page lookup. The path parameter is an
// agency ID or, failing UUID parsing, a public slug.
func (h *DirectoryHandler) GetAgency(c echo.Context) error {
	idOrSlug := c.Param("id")

	var profile *usecase.AgencyProfile
	var err error
	if agencyID, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		profile, err = h.directoryUC.GetAgency(c.Request().Context(), agencyID)
	} else {
		profile, err = h.directoryUC.GetAgencyBySlug(c.Request().Context(), idOrSlug)
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Agency retrieved successfully")
}

// ListTrades handles listing the trade reference table
func (h *DirectoryHandler) ListTrades(c echo.Context) error {
	trades, err := h.directoryUC.ListTrades(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trades, "Trades retrieved successfully")
}

// ListRegions handles listing the region reference table
func (h *DirectoryHandler) ListRegions(c echo.Context) error {
	regions, err := h.directoryUC.ListRegions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}
