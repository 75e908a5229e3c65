package interfaces

import (
	"context"

	"invoicedash/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for InvoiceRecord.
//
// Conventions:
//   - a zero-value record (empty ID) signals "not found"; repositories do not
//     surface their own not-found errors.
//   - List returns newest-first by CreatedAt; a non-empty query filters by
//     case-insensitive substring on vendor name or invoice number.
//
//go:generate mockgen -source=invoice_repository_interface.go -destination=mocks/invoice_repository_interface_mock.go -package=mock_interfaces
type IInvoiceRepository interface {
	List(ctx context.Context, query string) ([]entities.InvoiceRecord, error)
	GetByID(ctx context.Context, id string) (entities.InvoiceRecord, error)
	Create(ctx context.Context, rec entities.InvoiceRecord) (entities.InvoiceRecord, error)
	Update(ctx context.Context, rec entities.InvoiceRecord) (entities.InvoiceRecord, error)
	Delete(ctx context.Context, id string) (bool, error)
}
