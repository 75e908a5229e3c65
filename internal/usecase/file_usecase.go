package usecase

import (
	"context"
	"errors"
	"strings"

	"invoicedash/internal/domain/entities"
	"invoicedash/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// MaxUploadSize caps uploaded PDFs at 25MB, matching the public API contract.
const MaxUploadSize = 25 << 20

const pdfContentType = "application/pdf"

var (
	ErrFileNotFound        = errors.New("file not found")
	ErrInvalidFileID       = errors.New("invalid file id")
	ErrEmptyFile           = errors.New("empty file")
	ErrFileTooLarge        = errors.New("file exceeds maximum upload size")
	ErrUnsupportedFileType = errors.New("only PDF files are allowed")
)

type IFileUseCase interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (entities.StoredFile, error)
	Download(ctx context.Context, fileID string) (entities.StoredFile, error)
}

type FileUseCase struct {
	store interfaces.IFileStore
}

var _ IFileUseCase = (*FileUseCase)(nil)

func NewFileUseCase(store interfaces.IFileStore) *FileUseCase {
	return &FileUseCase{store: store}
}

func (u *FileUseCase) Upload(ctx context.Context, name, contentType string, data []byte) (entities.StoredFile, error) {
	if len(data) == 0 {
		return entities.StoredFile{}, ErrEmptyFile
	}
	if len(data) > MaxUploadSize {
		return entities.StoredFile{}, ErrFileTooLarge
	}
	if !strings.EqualFold(strings.TrimSpace(contentType), pdfContentType) {
		return entities.StoredFile{}, ErrUnsupportedFileType
	}

	file := entities.StoredFile{
		ID:          uuid.NewString(),
		Name:        name,
		ContentType: pdfContentType,
		Size:        int64(len(data)),
		Data:        data,
	}
	return u.store.Put(ctx, file)
}

func (u *FileUseCase) Download(ctx context.Context, fileID string) (entities.StoredFile, error) {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return entities.StoredFile{}, ErrInvalidFileID
	}

	file, err := u.store.Get(ctx, fileID)
	if err != nil {
		return entities.StoredFile{}, err
	}
	if file.ID == "" {
		return entities.StoredFile{}, ErrFileNotFound
	}
	return file, nil
}
