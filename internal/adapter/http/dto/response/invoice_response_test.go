package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"invoicedash/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := entities.InvoiceRecord{
		ID:       "inv-1",
		FileID:   "file-1",
		FileName: "invoice.pdf",
		Vendor:   entities.Vendor{Name: "Acme Corp"},
		Invoice: entities.InvoiceDetails{
			Number:    "INV-001",
			Currency:  "USD",
			Subtotal:  35,
			Total:     38.5,
			LineItems: []entities.LineItem{{Description: "widget", UnitPrice: 10, Quantity: 2, Total: 20}},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	resp := FromInvoice(rec)
	if resp.ID != "inv-1" || resp.Invoice.Total != 38.5 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.CreatedAt == nil || !resp.CreatedAt.Equal(created) {
		t.Fatalf("expected createdAt %v, got %v", created, resp.CreatedAt)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, key := range []string{`"fileId"`, `"lineItems"`, `"taxPercent"`, `"createdAt"`} {
		if !strings.Contains(string(b), key) {
			t.Fatalf("expected %s in %s", key, b)
		}
	}
}

func TestFromInvoice_DraftOmitsTimestamps(t *testing.T) {
	resp := FromInvoice(entities.InvoiceRecord{Vendor: entities.Vendor{Name: "Acme"}})
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(b), `"createdAt"`) || strings.Contains(string(b), `"id"`) {
		t.Fatalf("draft response must omit id and timestamps: %s", b)
	}
}

func TestFromInvoices_Empty(t *testing.T) {
	out := FromInvoices(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty slice, got %#v", out)
	}
}
