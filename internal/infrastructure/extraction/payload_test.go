package extraction

import (
	"errors"
	"testing"
)

func TestParseExtractionPayload(t *testing.T) {
	t.Run("json wrapped in prose", func(t *testing.T) {
		content := "Here is the extracted data:\n```json\n" + `{
  "vendor": {"name": "Acme Corp", "address": "1 Main St", "taxId": "TAX-1"},
  "invoice": {
    "number": "INV-001",
    "date": "2025-06-01",
    "currency": "usd",
    "subtotal": 35,
    "taxPercent": 10,
    "total": 38.5,
    "lineItems": [
      {"description": "widget", "unitPrice": 10, "quantity": 2, "total": 20},
      {"description": "gadget", "unitPrice": 5, "quantity": 3, "total": 15}
    ]
  }
}` + "\n```\nLet me know if you need anything else."

		rec, err := parseExtractionPayload(content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Vendor.Name != "Acme Corp" || rec.Vendor.TaxID != "TAX-1" {
			t.Fatalf("unexpected vendor: %+v", rec.Vendor)
		}
		if rec.Invoice.Number != "INV-001" || rec.Invoice.Currency != "USD" {
			t.Fatalf("unexpected invoice: %+v", rec.Invoice)
		}
		if len(rec.Invoice.LineItems) != 2 || rec.Invoice.LineItems[1].Quantity != 3 {
			t.Fatalf("unexpected line items: %+v", rec.Invoice.LineItems)
		}
	})

	t.Run("numeric strings are coerced", func(t *testing.T) {
		content := `{
  "vendor": {"name": "Acme"},
  "invoice": {
    "number": "1",
    "subtotal": "1,234.50",
    "taxPercent": "7.5",
    "lineItems": [{"description": "x", "unitPrice": "10.00", "quantity": "2", "total": "20"}]
  }
}`
		rec, err := parseExtractionPayload(content)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Invoice.Subtotal != 1234.5 || rec.Invoice.TaxPercent != 7.5 {
			t.Fatalf("unexpected totals: %+v", rec.Invoice)
		}
		it := rec.Invoice.LineItems[0]
		if it.UnitPrice != 10 || it.Quantity != 2 || it.Total != 20 {
			t.Fatalf("unexpected item: %+v", it)
		}
	})

	t.Run("missing sections become zero values", func(t *testing.T) {
		rec, err := parseExtractionPayload(`{"vendor": {"name": "Solo"}}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Vendor.Name != "Solo" || rec.Invoice.Number != "" || len(rec.Invoice.LineItems) != 0 {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})

	t.Run("garbage numbers land as zero", func(t *testing.T) {
		rec, err := parseExtractionPayload(`{"invoice": {"subtotal": "n/a", "taxPercent": null, "lineItems": [{"unitPrice": "ten", "quantity": 1.9}]}}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Invoice.Subtotal != 0 || rec.Invoice.TaxPercent != 0 {
			t.Fatalf("unexpected totals: %+v", rec.Invoice)
		}
		if rec.Invoice.LineItems[0].UnitPrice != 0 || rec.Invoice.LineItems[0].Quantity != 1 {
			t.Fatalf("unexpected item: %+v", rec.Invoice.LineItems[0])
		}
	})

	t.Run("no json object", func(t *testing.T) {
		for _, content := range []string{"", "I could not read this document.", "[1, 2, 3]"} {
			if _, err := parseExtractionPayload(content); !errors.Is(err, ErrNoJSONPayload) {
				t.Fatalf("content %q: expected ErrNoJSONPayload, got %v", content, err)
			}
		}
	})

	t.Run("malformed json object", func(t *testing.T) {
		if _, err := parseExtractionPayload(`{"vendor": {`); !errors.Is(err, ErrNoJSONPayload) {
			t.Fatalf("expected ErrNoJSONPayload, got %v", err)
		}
	})
}

func TestExtractPDFText_Empty(t *testing.T) {
	if _, err := extractPDFText(nil); !errors.Is(err, ErrInvalidPDF) {
		t.Fatalf("expected ErrInvalidPDF, got %v", err)
	}
	if _, err := extractPDFText([]byte("not a pdf")); !errors.Is(err, ErrInvalidPDF) {
		t.Fatalf("expected ErrInvalidPDF, got %v", err)
	}
}
