package handler

import (
	"bytes"
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"crewdir/internal/delivery/http/validator"
	mockUC "crewdir/internal/mocks/usecase"
	"crewdir/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeleteContext(t *testing.T, agencyID string, query string, editorID *uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	target := "/admin/agencies/" + agencyID + "/compliance"
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodDelete, target, nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(agencyID)
	if editorID != nil {
		c.Set("userID", *editorID)
	}

	return c, rec
}

func TestComplianceHandler_DeleteDocument_TypeFromQuery(t *testing.T) {
	mockComplianceUC := mockUC.NewMockComplianceUsecase(t)
	handler := &ComplianceHandler{complianceUC: mockComplianceUC, logger: slog.Default()}

	agencyID := uuid.New()
	editorID := uuid.New()

	mockComplianceUC.EXPECT().
		DeleteDocument(mock.Anything, usecase.DeleteDocumentInput{
			AgencyID:       agencyID,
			ComplianceType: "w9",
		}).
		Return(nil)

	c, rec := newDeleteContext(t, agencyID.String(), "compliance_type=w9", &editorID)

	require.NoError(t, handler.DeleteDocument(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	// The cleared slot is reported explicitly, not omitted.
	assert.Contains(t, rec.Body.String(), `"document_url":null`)
}

func TestComplianceHandler_DeleteDocument_MissingType(t *testing.T) {
	mockComplianceUC := mockUC.NewMockComplianceUsecase(t)
	handler := &ComplianceHandler{complianceUC: mockComplianceUC, logger: slog.Default()}

	editorID := uuid.New()
	c, rec := newDeleteContext(t, uuid.New().String(), "", &editorID)

	require.NoError(t, handler.DeleteDocument(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComplianceHandler_UploadDocument_ReturnsDocumentURL(t *testing.T) {
	mockComplianceUC := mockUC.NewMockComplianceUsecase(t)
	handler := &ComplianceHandler{complianceUC: mockComplianceUC, logger: slog.Default()}

	agencyID := uuid.New()
	editorID := uuid.New()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("type", "w9"))
	part, err := writer.CreateFormFile("document", "w9.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	mockComplianceUC.EXPECT().
		UploadDocument(mock.Anything, mock.AnythingOfType("usecase.UploadDocumentInput")).
		Run(func(ctx context.Context, input usecase.UploadDocumentInput) {
			assert.Equal(t, agencyID, input.AgencyID)
			assert.Equal(t, editorID, input.EditorID)
			assert.Equal(t, "w9", input.ComplianceType)
			assert.Equal(t, "w9.pdf", input.FileName)
		}).
		Return(&usecase.UploadDocumentOutput{
			DocumentURL: "https://storage.example.com/crewdir/w9.pdf?signed",
		}, nil)

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/agencies/"+agencyID.String()+"/compliance", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(agencyID.String())
	c.Set("userID", editorID)

	require.NoError(t, handler.UploadDocument(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"document_url":"https://storage.example.com/crewdir/w9.pdf?signed"`)
}
