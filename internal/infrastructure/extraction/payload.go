package extraction

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"invoicedash/internal/domain/entities"
)

var ErrNoJSONPayload = errors.New("no valid JSON object found in model response")

// Models rarely return bare JSON; the object is usually wrapped in prose or a
// markdown fence. Grab the outermost brace-delimited span and try that.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// flexFloat decodes a JSON number or a numeric string. Model output mixes
// both ("subtotal": "1,234.50" included), so the boundary coerces instead of
// rejecting; anything unparsable lands as 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			*f = 0
			return nil
		}
		raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

type flexInt int

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		*i = 0
		return nil
	}
	*i = flexInt(f)
	return nil
}

type payloadVendor struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	TaxID   string `json:"taxId"`
}

type payloadLineItem struct {
	Description string    `json:"description"`
	UnitPrice   flexFloat `json:"unitPrice"`
	Quantity    flexInt   `json:"quantity"`
	Total       flexFloat `json:"total"`
}

type payloadInvoice struct {
	Number     string            `json:"number"`
	Date       string            `json:"date"`
	Currency   string            `json:"currency"`
	Subtotal   flexFloat         `json:"subtotal"`
	TaxPercent flexFloat         `json:"taxPercent"`
	Total      flexFloat         `json:"total"`
	PONumber   string            `json:"poNumber"`
	PODate     string            `json:"poDate"`
	LineItems  []payloadLineItem `json:"lineItems"`
}

type extractionPayload struct {
	Vendor  payloadVendor  `json:"vendor"`
	Invoice payloadInvoice `json:"invoice"`
}

// parseExtractionPayload pulls the JSON object out of free-form model text
// and maps it onto a draft record. Totals in the payload are carried over
// as-is; the usecase recomputes them before anything downstream sees them.
func parseExtractionPayload(content string) (entities.InvoiceRecord, error) {
	match := jsonObjectPattern.FindString(content)
	if match == "" {
		return entities.InvoiceRecord{}, ErrNoJSONPayload
	}

	var payload extractionPayload
	if err := json.Unmarshal([]byte(match), &payload); err != nil {
		return entities.InvoiceRecord{}, ErrNoJSONPayload
	}

	items := make([]entities.LineItem, 0, len(payload.Invoice.LineItems))
	for _, li := range payload.Invoice.LineItems {
		items = append(items, entities.LineItem{
			Description: li.Description,
			UnitPrice:   float64(li.UnitPrice),
			Quantity:    int(li.Quantity),
			Total:       float64(li.Total),
		})
	}

	return entities.InvoiceRecord{
		Vendor: entities.Vendor{
			Name:    strings.TrimSpace(payload.Vendor.Name),
			Address: strings.TrimSpace(payload.Vendor.Address),
			TaxID:   strings.TrimSpace(payload.Vendor.TaxID),
		},
		Invoice: entities.InvoiceDetails{
			Number:     strings.TrimSpace(payload.Invoice.Number),
			Date:       strings.TrimSpace(payload.Invoice.Date),
			Currency:   strings.ToUpper(strings.TrimSpace(payload.Invoice.Currency)),
			Subtotal:   float64(payload.Invoice.Subtotal),
			TaxPercent: float64(payload.Invoice.TaxPercent),
			Total:      float64(payload.Invoice.Total),
			PONumber:   strings.TrimSpace(payload.Invoice.PONumber),
			PODate:     strings.TrimSpace(payload.Invoice.PODate),
			LineItems:  items,
		},
	}, nil
}
