package domain

import "time"

// Upload is the metadata record for a file stored in external object
// storage. The binary payload itself never touches the core; only the
// storage URL is recorded.
type Upload struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Filename   string    `json:"filename"`
	StorageURL string    `json:"storage_url"`
	CreatedAt  time.Time `json:"created_at"`
}
