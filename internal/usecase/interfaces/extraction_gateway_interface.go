package interfaces

import (
	"context"

	"invoicedash/internal/domain/entities"
)

// IExtractionGateway abstracts the hosted LLM providers that turn a PDF into
// structured invoice fields.
//
// The returned record carries vendor + invoice fields only; id, file
// references and timestamps are never set by the gateway. Output is
// best-effort and untrusted: callers must normalize it before use.
//
//go:generate mockgen -source=extraction_gateway_interface.go -destination=mocks/extraction_gateway_interface_mock.go -package=mock_interfaces
type IExtractionGateway interface {
	ExtractInvoice(ctx context.Context, pdf []byte, model string) (entities.InvoiceRecord, error)
}
