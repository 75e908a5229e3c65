package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

// Model selectors accepted by POST /api/extract.
const (
	ModelGemini = "gemini"
	ModelGroq   = "groq"
)

var (
	ErrInvalidExtractionModel = errors.New(`model must be either "gemini" or "groq"`)
	ErrExtractionFailed       = errors.New("extraction failed")
)

// IExtractionUseCase runs AI field extraction over an uploaded PDF.
type IExtractionUseCase interface {
	Extract(ctx context.Context, fileID, model string) (entities.InvoiceRecord, error)
}

type ExtractionUseCase struct {
	files   interfaces.IFileStore
	gateway interfaces.IExtractionGateway
}

var _ IExtractionUseCase = (*ExtractionUseCase)(nil)

func NewExtractionUseCase(files interfaces.IFileStore, gateway interfaces.IExtractionGateway) *ExtractionUseCase {
	return &ExtractionUseCase{files: files, gateway: gateway}
}

// Extract resolves the PDF, asks the selected model for structured fields and
// normalizes whatever comes back. Model output is untrusted: totals are always
// recomputed here, and identifiers/timestamps are stripped so the result is a
// plain draft.
func (u *ExtractionUseCase) Extract(ctx context.Context, fileID, model string) (entities.InvoiceRecord, error) {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return entities.InvoiceRecord{}, ErrInvalidFileID
	}
	model = strings.ToLower(strings.TrimSpace(model))
	if model != ModelGemini && model != ModelGroq {
		return entities.InvoiceRecord{}, ErrInvalidExtractionModel
	}

	file, err := u.files.Get(ctx, fileID)
	if err != nil {
		return entities.InvoiceRecord{}, err
	}
	if file.ID == "" {
		return entities.InvoiceRecord{}, ErrFileNotFound
	}

	start := time.Now()
	rec, err := u.gateway.ExtractInvoice(ctx, file.Data, model)
	if err != nil {
		log.Error().Err(err).Str("file_id", fileID).Str("model", model).Msg("invoice extraction failed")
		return entities.InvoiceRecord{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	rec.ID = ""
	rec.FileID = ""
	rec.FileName = ""
	rec.CreatedAt = time.Time{}
	rec.UpdatedAt = time.Time{}
	entities.NormalizeInvoice(&rec)

	log.Info().
		Str("file_id", fileID).
		Str("model", model).
		Int("line_items", len(rec.Invoice.LineItems)).
		Dur("took", time.Since(start)).
		Msg("invoice extraction complete")

	return rec, nil
}
