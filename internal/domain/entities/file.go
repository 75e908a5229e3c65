package entities

// StoredFile is an uploaded source document held in the object store.
// Data is only populated on Put/Get round-trips; list-style operations
// do not exist for files.
type StoredFile struct {
	ID          string `json:"fileId"`
	Name        string `json:"fileName"`
	ContentType string `json:"-"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}
