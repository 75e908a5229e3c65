package entities

import (
	"errors"
	"math"
	"strconv"
)

var ErrLineItemIndexOutOfRange = errors.New("line item index out of range")

// LineItemField identifies which field of a line item an edit touched.
type LineItemField string

const (
	FieldDescription LineItemField = "description"
	FieldUnitPrice   LineItemField = "unitPrice"
	FieldQuantity    LineItemField = "quantity"
)

// RecomputeLineItem applies a single-field edit to a line item and keeps its
// Total consistent. Editing unitPrice or quantity recomputes
// Total = UnitPrice * Quantity from the post-change pair; editing the
// description leaves Total alone. Numeric values are coerced through
// coerceNumber, so malformed input lands as 0 instead of NaN.
func RecomputeLineItem(item LineItem, field LineItemField, value any) LineItem {
	switch field {
	case FieldDescription:
		if s, ok := value.(string); ok {
			item.Description = s
		}
		return item
	case FieldUnitPrice:
		item.UnitPrice = coerceNumber(value)
	case FieldQuantity:
		item.Quantity = coerceQuantity(value)
	default:
		return item
	}
	item.Total = item.UnitPrice * float64(item.Quantity)
	return item
}

// RecomputeInvoiceTotals derives subtotal and total from the line items and
// the tax rate. An empty list yields 0/0 whatever the tax rate is.
func RecomputeInvoiceTotals(items []LineItem, taxPercent float64) (subtotal, total float64) {
	for _, it := range items {
		subtotal += it.Total
	}
	if !isFinite(taxPercent) {
		taxPercent = 0
	}
	total = subtotal + subtotal*taxPercent/100
	return subtotal, total
}

// AddLineItem appends a fresh zero-valued row. Quantity starts at 1 so the
// first unit-price edit produces a non-zero total.
func AddLineItem(items []LineItem) []LineItem {
	return append(items, LineItem{Description: "", UnitPrice: 0, Quantity: 1, Total: 0})
}

// RemoveLineItem removes the row at idx, preserving the order of the rest.
// An out-of-range idx is a caller bug and fails with ErrLineItemIndexOutOfRange.
func RemoveLineItem(items []LineItem, idx int) ([]LineItem, error) {
	if idx < 0 || idx >= len(items) {
		return nil, ErrLineItemIndexOutOfRange
	}
	out := make([]LineItem, 0, len(items)-1)
	out = append(out, items[:idx]...)
	out = append(out, items[idx+1:]...)
	return out, nil
}

// NormalizeInvoice rewrites every derived field of the record in place: each
// line total from its own unit price and quantity, then subtotal and total
// from the line items and tax rate. Untrusted input (AI extraction output,
// client payloads) must pass through here before persistence or response.
func NormalizeInvoice(r *InvoiceRecord) {
	if r.Invoice.Currency == "" {
		r.Invoice.Currency = DefaultCurrency
	}
	if !isFinite(r.Invoice.TaxPercent) {
		r.Invoice.TaxPercent = 0
	}
	for i := range r.Invoice.LineItems {
		it := &r.Invoice.LineItems[i]
		if !isFinite(it.UnitPrice) {
			it.UnitPrice = 0
		}
		it.Total = it.UnitPrice * float64(it.Quantity)
	}
	r.Invoice.Subtotal, r.Invoice.Total = RecomputeInvoiceTotals(r.Invoice.LineItems, r.Invoice.TaxPercent)
}

// coerceNumber turns an edit value into a finite float64. Strings are parsed,
// anything unparsable or non-finite becomes 0.
func coerceNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		f = parsed
	case nil:
		return 0
	default:
		return 0
	}
	if !isFinite(f) {
		return 0
	}
	return f
}

// maxCoercedQuantity bounds quantity edits to the range where float64 still
// holds exact integers; anything beyond it is malformed input, not a count.
const maxCoercedQuantity = float64(1 << 53)

// coerceQuantity is coerceNumber for the quantity field. Values outside the
// exact-integer range of float64 coerce to 0 like any other garbage, so the
// float to int conversion below can never overflow.
func coerceQuantity(v any) int {
	f := coerceNumber(v)
	if f > maxCoercedQuantity || f < -maxCoercedQuantity {
		return 0
	}
	return int(f)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
