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

var errInvalidInvoiceBody = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles HTTP requests for invoice records.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// List returns all invoices, newest first. The optional q parameter filters
// by vendor name or invoice number, case-insensitively.
func (h *InvoiceHandler) List(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoices(records))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(rec))
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoiceBody.HTTPStatus, errInvalidInvoiceBody.ToHTTPError())
		return
	}

	rec, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(rec))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	var payload request.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoiceBody.HTTPStatus, errInvalidInvoiceBody.ToHTTPError())
		return
	}

	rec, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToPatch())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(rec))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Invoice deleted successfully"})
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoicePayload):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
