package entity

import "time"

// Upload is the stored metadata for one uploaded base image and its
// preprocessed variants.
type Upload struct {
	ImageID      string            `json:"image_id"`
	UserID       string            `json:"user_id"`
	Category     string            `json:"category"`
	OriginalName string            `json:"original_name"`
	ContentType  string            `json:"content_type"`
	Size         int64             `json:"size"`
	VariantKeys  map[string]string `json:"variant_keys"` // variant name -> storage key
	UploadedAt   time.Time         `json:"uploaded_at"`
}
