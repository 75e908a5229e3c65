package handlers

import (
	"errors"
	"net/http"

	request "invoicedash/internal/adapter/http/dto/request"
	response "invoicedash/internal/adapter/http/dto/response"
	"invoicedash/internal/usecase"
	"invoicedash/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidExtractBody = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "fileId and model are required", http.StatusBadRequest)

// ExtractHandler runs AI field extraction over an uploaded PDF.
type ExtractHandler struct {
	usecase usecase.IExtractionUseCase
}

func NewExtractHandler(uc usecase.IExtractionUseCase) *ExtractHandler {
	return &ExtractHandler{usecase: uc}
}

// Extract returns the extracted vendor + invoice fields as a draft record.
func (h *ExtractHandler) Extract(c *gin.Context) {
	var payload request.ExtractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExtractBody.HTTPStatus, errInvalidExtractBody.ToHTTPError())
		return
	}

	rec, err := h.usecase.Extract(c.Request.Context(), payload.ResolveFileID(), payload.ResolveModel())
	if err != nil {
		appErr := mapExtractionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(rec))
}

func mapExtractionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidExtractionModel):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", `model must be either "gemini" or "groq"`, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidFileID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "File not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExtractionFailed):
		return pkg.NewDomainError("EXTRACTION_FAILED", "AI extraction failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
