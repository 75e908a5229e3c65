package request

import "strings"

// ExtractRequest selects which uploaded file to run through which model.
type ExtractRequest struct {
	FileID string `json:"fileId" binding:"required"`
	Model  string `json:"model" binding:"required"`
}

func (r ExtractRequest) ResolveFileID() string {
	return strings.TrimSpace(r.FileID)
}

func (r ExtractRequest) ResolveModel() string {
	return strings.ToLower(strings.TrimSpace(r.Model))
}
