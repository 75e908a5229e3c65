package handlers

import (
	"errors"
	"io"
	"net/http"

	response "invoicedash/internal/adapter/http/dto/response"
	"invoicedash/internal/usecase"
	"invoicedash/pkg"

	"github.com/gin-gonic/gin"
)

var errNoFileUploaded = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "No file uploaded", http.StatusBadRequest)

// UploadHandler handles PDF upload and retrieval.
type UploadHandler struct {
	usecase usecase.IFileUseCase
}

func NewUploadHandler(uc usecase.IFileUseCase) *UploadHandler {
	return &UploadHandler{usecase: uc}
}

// Upload accepts one multipart file under the "pdf" field.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		c.JSON(errNoFileUploaded.HTTPStatus, errNoFileUploaded.ToHTTPError())
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(errNoFileUploaded.HTTPStatus, errNoFileUploaded.ToHTTPError())
		return
	}
	defer src.Close()

	// Read one byte past the cap so the usecase can tell "at the limit"
	// from "over it".
	data, err := io.ReadAll(io.LimitReader(src, usecase.MaxUploadSize+1))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "File upload failed", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := h.usecase.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		appErr := mapFileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStoredFile(file))
}

// Download streams the raw PDF bytes back to the client.
func (h *UploadHandler) Download(c *gin.Context) {
	file, err := h.usecase.Download(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		appErr := mapFileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, "application/pdf", file.Data)
}

func mapFileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyFile), errors.Is(err, usecase.ErrInvalidFileID):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileTooLarge):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "File exceeds the 25MB upload limit", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Only PDF files are allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFileNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "File not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
