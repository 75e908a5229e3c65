package repository

import (
	"testing"
	"time"

	"invoicedash/internal/domain/entities"
)

func listFixture() []entities.InvoiceRecord {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []entities.InvoiceRecord{
		{
			ID:        "inv-1",
			Vendor:    entities.Vendor{Name: "Acme Corp"},
			Invoice:   entities.InvoiceDetails{Number: "INV-100"},
			CreatedAt: base,
		},
		{
			ID:        "inv-2",
			Vendor:    entities.Vendor{Name: "Globex Industries"},
			Invoice:   entities.InvoiceDetails{Number: "GLX-2025-01"},
			CreatedAt: base.Add(48 * time.Hour),
		},
		{
			ID:        "inv-3",
			Vendor:    entities.Vendor{Name: "acme services"},
			Invoice:   entities.InvoiceDetails{Number: "INV-205"},
			CreatedAt: base.Add(24 * time.Hour),
		},
	}
}

func ids(records []entities.InvoiceRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}

func assertIDs(t *testing.T, got []entities.InvoiceRecord, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestFilterAndSortInvoices(t *testing.T) {
	t.Run("empty query returns everything newest first", func(t *testing.T) {
		got := filterAndSortInvoices(listFixture(), "")
		assertIDs(t, got, "inv-2", "inv-3", "inv-1")
	})

	t.Run("filter cases", func(t *testing.T) {
		tests := []struct {
			name  string
			query string
			want  []string
		}{
			{name: "vendor name mixed case", query: "ACME", want: []string{"inv-3", "inv-1"}},
			{name: "vendor name substring", query: "glob", want: []string{"inv-2"}},
			{name: "invoice number mixed case", query: "inv-2", want: []string{"inv-3"}},
			{name: "invoice number substring", query: "2025", want: []string{"inv-2"}},
			{name: "hit on either field", query: "inv", want: []string{"inv-3", "inv-1"}},
			{name: "no match", query: "stark", want: nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := filterAndSortInvoices(listFixture(), tt.query)
				assertIDs(t, got, tt.want...)
			})
		}
	})

	t.Run("filtered results stay newest first", func(t *testing.T) {
		records := listFixture()
		// inv-1 and inv-3 both match "acme"; inv-3 is more recent.
		got := filterAndSortInvoices(records, "acme")
		assertIDs(t, got, "inv-3", "inv-1")
	})
}
