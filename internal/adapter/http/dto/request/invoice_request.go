package request

import (
	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase"
)

type VendorRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

type LineItemRequest struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

type InvoiceDetailsRequest struct {
	Number     string            `json:"number"`
	Date       string            `json:"date"`
	Currency   string            `json:"currency"`
	Subtotal   float64           `json:"subtotal"`
	TaxPercent float64           `json:"taxPercent"`
	Total      float64           `json:"total"`
	PONumber   string            `json:"poNumber"`
	PODate     string            `json:"poDate"`
	LineItems  []LineItemRequest `json:"lineItems"`
}

// CreateInvoiceRequest is the draft record posted by the client. Subtotal,
// total and per-line totals are accepted but never trusted; the usecase
// recomputes them.
type CreateInvoiceRequest struct {
	FileID   string                `json:"fileId"`
	FileName string                `json:"fileName"`
	Vendor   VendorRequest         `json:"vendor"`
	Invoice  InvoiceDetailsRequest `json:"invoice"`
}

func (r CreateInvoiceRequest) ToEntity() entities.InvoiceRecord {
	return entities.InvoiceRecord{
		FileID:   r.FileID,
		FileName: r.FileName,
		Vendor:   r.Vendor.toEntity(),
		Invoice:  r.Invoice.toEntity(),
	}
}

// UpdateInvoiceRequest carries a section-level partial update: absent sections
// stay nil and leave the stored section untouched.
type UpdateInvoiceRequest struct {
	FileID   *string                `json:"fileId"`
	FileName *string                `json:"fileName"`
	Vendor   *VendorRequest         `json:"vendor"`
	Invoice  *InvoiceDetailsRequest `json:"invoice"`
}

func (r UpdateInvoiceRequest) ToPatch() usecase.InvoicePatch {
	patch := usecase.InvoicePatch{
		FileID:   r.FileID,
		FileName: r.FileName,
	}
	if r.Vendor != nil {
		v := r.Vendor.toEntity()
		patch.Vendor = &v
	}
	if r.Invoice != nil {
		inv := r.Invoice.toEntity()
		patch.Invoice = &inv
	}
	return patch
}

func (v VendorRequest) toEntity() entities.Vendor {
	return entities.Vendor{Name: v.Name, Address: v.Address, TaxID: v.TaxID}
}

func (i InvoiceDetailsRequest) toEntity() entities.InvoiceDetails {
	items := make([]entities.LineItem, 0, len(i.LineItems))
	for _, li := range i.LineItems {
		items = append(items, entities.LineItem{
			Description: li.Description,
			UnitPrice:   li.UnitPrice,
			Quantity:    li.Quantity,
			Total:       li.Total,
		})
	}
	return entities.InvoiceDetails{
		Number:     i.Number,
		Date:       i.Date,
		Currency:   i.Currency,
		Subtotal:   i.Subtotal,
		TaxPercent: i.TaxPercent,
		Total:      i.Total,
		PONumber:   i.PONumber,
		PODate:     i.PODate,
		LineItems:  items,
	}
}
