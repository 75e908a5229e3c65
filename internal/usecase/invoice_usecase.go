package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrInvalidInvoiceID      = errors.New("invalid invoice id")
	ErrInvalidInvoicePayload = errors.New("invalid invoice payload")
)

// InvoicePatch is a section-level partial update. A nil section is left
// untouched; a present section replaces the stored one wholly. CreatedAt can
// never be patched, UpdatedAt is always refreshed by the server.
type InvoicePatch struct {
	FileID   *string
	FileName *string
	Vendor   *entities.Vendor
	Invoice  *entities.InvoiceDetails
}

// IInvoiceUseCase exposes invoice record CRUD.
//
// Derived totals are never trusted from the caller: every create and update
// runs the record through entities.NormalizeInvoice before it is persisted,
// so the subtotal/total invariants hold for everything in the store.
type IInvoiceUseCase interface {
	List(ctx context.Context, query string) ([]entities.InvoiceRecord, error)
	GetByID(ctx context.Context, id string) (entities.InvoiceRecord, error)
	Create(ctx context.Context, draft entities.InvoiceRecord) (entities.InvoiceRecord, error)
	Update(ctx context.Context, id string, patch InvoicePatch) (entities.InvoiceRecord, error)
	Delete(ctx context.Context, id string) error
}

type InvoiceUseCase struct {
	repo interfaces.IInvoiceRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

func (u *InvoiceUseCase) List(ctx context.Context, query string) ([]entities.InvoiceRecord, error) {
	records, err := u.repo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []entities.InvoiceRecord{}
	}
	return records, nil
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.InvoiceRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoiceRecord{}, ErrInvalidInvoiceID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	if rec.ID == "" {
		return entities.InvoiceRecord{}, ErrInvoiceNotFound
	}
	return rec, nil
}

func (u *InvoiceUseCase) Create(ctx context.Context, draft entities.InvoiceRecord) (entities.InvoiceRecord, error) {
	if strings.TrimSpace(draft.Vendor.Name) == "" || strings.TrimSpace(draft.Invoice.Number) == "" {
		return entities.InvoiceRecord{}, ErrInvalidInvoicePayload
	}

	entities.NormalizeInvoice(&draft)

	// Draft => persisted is the only place an id or CreatedAt is ever assigned.
	now := time.Now().UTC()
	draft.ID = uuid.NewString()
	draft.CreatedAt = now
	draft.UpdatedAt = now

	return u.repo.Create(ctx, draft)
}

func (u *InvoiceUseCase) Update(ctx context.Context, id string, patch InvoicePatch) (entities.InvoiceRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoiceRecord{}, ErrInvalidInvoiceID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	if existing.ID == "" {
		return entities.InvoiceRecord{}, ErrInvoiceNotFound
	}

	if patch.FileID != nil {
		existing.FileID = *patch.FileID
	}
	if patch.FileName != nil {
		existing.FileName = *patch.FileName
	}
	if patch.Vendor != nil {
		existing.Vendor = *patch.Vendor
	}
	if patch.Invoice != nil {
		existing.Invoice = *patch.Invoice
	}

	entities.NormalizeInvoice(&existing)
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	if updated.ID == "" {
		return entities.InvoiceRecord{}, ErrInvoiceNotFound
	}
	return updated, nil
}

func (u *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInvoiceID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrInvoiceNotFound
	}
	return nil
}
