package response

import "invoicedash/internal/domain/entities"

type UploadResponse struct {
	FileID   string `json:"fileId"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size"`
}

func FromStoredFile(f entities.StoredFile) UploadResponse {
	return UploadResponse{FileID: f.ID, FileName: f.Name, Size: f.Size}
}

// MessageResponse is the body for operations whose only payload is a note.
type MessageResponse struct {
	Message string `json:"message"`
}
