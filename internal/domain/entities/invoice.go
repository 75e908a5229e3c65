package entities

import "time"

// InvoiceRecord is the invoice document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Lifecycle:
//   - ID empty  => draft, never persisted.
//   - ID + CreatedAt are assigned exactly once on first create.
//   - UpdatedAt is refreshed by every update.
type InvoiceRecord struct {
	ID        string         `json:"id,omitempty"`
	FileID    string         `json:"fileId"`
	FileName  string         `json:"fileName"`
	Vendor    Vendor         `json:"vendor"`
	Invoice   InvoiceDetails `json:"invoice"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt,omitempty"`
}

type Vendor struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}

// InvoiceDetails carries the billing fields of one invoice.
//
// Subtotal and Total are derived values, always recomputed from LineItems and
// TaxPercent (see totals.go). They are stored for query/display convenience
// but are never authoritative on their own.
type InvoiceDetails struct {
	Number     string     `json:"number"`
	Date       string     `json:"date"`
	Currency   string     `json:"currency"`
	Subtotal   float64    `json:"subtotal"`
	TaxPercent float64    `json:"taxPercent"`
	Total      float64    `json:"total"`
	PONumber   string     `json:"poNumber,omitempty"`
	PODate     string     `json:"poDate,omitempty"`
	LineItems  []LineItem `json:"lineItems"`
}

// LineItem is one billable row. Total is derived: UnitPrice * Quantity.
type LineItem struct {
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	Total       float64 `json:"total"`
}

// DefaultCurrency is applied when a record carries no currency code.
const DefaultCurrency = "USD"

// NewDraftInvoice returns an empty draft with the defaults the form starts from.
func NewDraftInvoice() InvoiceRecord {
	return InvoiceRecord{
		Vendor: Vendor{},
		Invoice: InvoiceDetails{
			Currency:  DefaultCurrency,
			LineItems: []LineItem{},
		},
	}
}

// IsDraft reports whether the record has never been persisted.
func (r InvoiceRecord) IsDraft() bool {
	return r.ID == ""
}
