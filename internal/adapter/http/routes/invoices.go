package routes

import (
	"invoicedash/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.List)
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}
}
