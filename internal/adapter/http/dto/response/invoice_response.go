package response

import (
	"time"

	"invoicedash/internal/domain/entities"
)

type VendorResponse struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

type LineItemResponse struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

type InvoiceDetailsResponse struct {
	Number     string             `json:"number"`
	Date       string             `json:"date"`
	Currency   string             `json:"currency"`
	Subtotal   float64            `json:"subtotal"`
	TaxPercent float64            `json:"taxPercent"`
	Total      float64            `json:"total"`
	PONumber   string             `json:"poNumber,omitempty"`
	PODate     string             `json:"poDate,omitempty"`
	LineItems  []LineItemResponse `json:"lineItems"`
}

type InvoiceResponse struct {
	ID        string                 `json:"id,omitempty"`
	FileID    string                 `json:"fileId"`
	FileName  string                 `json:"fileName"`
	Vendor    VendorResponse         `json:"vendor"`
	Invoice   InvoiceDetailsResponse `json:"invoice"`
	CreatedAt *time.Time             `json:"createdAt,omitempty"`
	UpdatedAt *time.Time             `json:"updatedAt,omitempty"`
}

func FromInvoice(rec entities.InvoiceRecord) InvoiceResponse {
	items := make([]LineItemResponse, 0, len(rec.Invoice.LineItems))
	for _, li := range rec.Invoice.LineItems {
		items = append(items, LineItemResponse(li))
	}

	resp := InvoiceResponse{
		ID:       rec.ID,
		FileID:   rec.FileID,
		FileName: rec.FileName,
		Vendor:   VendorResponse(rec.Vendor),
		Invoice: InvoiceDetailsResponse{
			Number:     rec.Invoice.Number,
			Date:       rec.Invoice.Date,
			Currency:   rec.Invoice.Currency,
			Subtotal:   rec.Invoice.Subtotal,
			TaxPercent: rec.Invoice.TaxPercent,
			Total:      rec.Invoice.Total,
			PONumber:   rec.Invoice.PONumber,
			PODate:     rec.Invoice.PODate,
			LineItems:  items,
		},
	}
	if !rec.CreatedAt.IsZero() {
		created := rec.CreatedAt
		resp.CreatedAt = &created
	}
	if !rec.UpdatedAt.IsZero() {
		updated := rec.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}

func FromInvoices(records []entities.InvoiceRecord) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, FromInvoice(rec))
	}
	return out
}
