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

// ComplianceHandlerParams holds dependencies for ComplianceHandler, injected by Fx.
type ComplianceHandlerParams struct {
	fx.In

	ComplianceUC usecase.ComplianceUsecase
	Logger       *slog.Logger
}

// ComplianceHandler drives the compliance document lifecycle endpoints.
type ComplianceHandler struct {
	complianceUC usecase.ComplianceUsecase
	logger       *slog.Logger
}

// NewComplianceHandler is the constructor for ComplianceHandler
func NewComplianceHandler(params ComplianceHandlerParams) *ComplianceHandler {
	return &ComplianceHandler{
		complianceUC: params.ComplianceUC,
		logger:       params.Logger,
	}
}

// UploadDocument handles a multipart compliance document upload. The form
// carries a "type" field and a "document" file part.
func (h *ComplianceHandler) UploadDocument(c echo.Context) error {
	editorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	agencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agency ID")
	}

	complianceType := c.FormValue("type")
	if complianceType == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "Compliance type is required")
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Document file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.InternalServerError(c, "UPLOAD_FAILED", "Failed to read uploaded file")
	}
	defer file.Close()

	output, err := h.complianceUC.UploadDocument(c.Request().Context(), usecase.UploadDocumentInput{
		AgencyID:       agencyID,
		EditorID:       editorID,
		ComplianceType: complianceType,
		FileName:       fileHeader.Filename,
		ContentType:    fileHeader.Header.Get("Content-Type"),
		Size:           fileHeader.Size,
		Content:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Document uploaded successfully")
}

// ReviewDocumentRequest represents the verify/reject decision body
type ReviewDocumentRequest struct {
	ComplianceType string  `json:"compliance_type" validate:"required"`
	Action         string  `json:"action" validate:"required,oneof=verify reject"`
	Reason         string  `json:"reason"`
	Notes          *string `json:"notes"`
}

// ReviewDocument handles a verify or reject decision on a pending document
func (h *ComplianceHandler) ReviewDocument(c echo.Context) error {
	reviewerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	agencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agency ID")
	}

	var req ReviewDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.complianceUC.ReviewDocument(c.Request().Context(), usecase.ReviewDocumentInput{
		AgencyID:       agencyID,
		ReviewerID:     reviewerID,
		ComplianceType: req.ComplianceType,
		Action:         req.Action,
		Reason:         req.Reason,
		Notes:          req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output.Compliance, output.Message)
}

// DeleteDocumentRequest carries the compliance type from the query string
type DeleteDocumentRequest struct {
	ComplianceType string `query:"compliance_type" validate:"required"`
}

// DeleteDocumentResponse reports the cleared document slot
type DeleteDocumentResponse struct {
	DocumentURL *string `json:"document_url"`
}

// DeleteDocument handles removing a stored document without review semantics
func (h *ComplianceHandler) DeleteDocument(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	agencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agency ID")
	}

	var req DeleteDocumentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deletion input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.complianceUC.DeleteDocument(c.Request().Context(), usecase.DeleteDocumentInput{
		AgencyID:       agencyID,
		ComplianceType: req.ComplianceType,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeleteDocumentResponse{}, "Document deleted successfully")
}

// ListCompliance handles reading all compliance rows of an agency
func (h *ComplianceHandler) ListCompliance(c echo.Context) error {
	agencyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid agency ID")
	}

	compliances, err := h.complianceUC.ListCompliance(c.Request().Context(), agencyID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, compliances, "Compliance records retrieved successfully")
}
