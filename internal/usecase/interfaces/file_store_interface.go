package interfaces

import (
	"context"

	"invoicedash/internal/domain/entities"
)

// IFileStore abstracts the object store holding uploaded PDFs.
// A zero-value StoredFile (empty ID) from Get signals "not found".
//
//go:generate mockgen -source=file_store_interface.go -destination=mocks/file_store_interface_mock.go -package=mock_interfaces
type IFileStore interface {
	Put(ctx context.Context, file entities.StoredFile) (entities.StoredFile, error)
	Get(ctx context.Context, id string) (entities.StoredFile, error)
}
