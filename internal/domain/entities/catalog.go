package entities

import "github.com/google/uuid"

// Suggestion is one product search suggestion row.
type Suggestion struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

// UploadResult is returned by the generic image upload endpoint.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
