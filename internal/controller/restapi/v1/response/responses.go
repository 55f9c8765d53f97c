// Package response holds the JSON wire shapes of the v1 API.
package response

import (
	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/entity"
)

type Error struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RateLimited is the 429 body; ResetTime is unix milliseconds.
type RateLimited struct {
	Error     string `json:"error"`
	ResetTime int64  `json:"resetTime"`
}

// Generate is the multi-format generation response. Variants maps format
// keys to serving paths.
type Generate struct {
	Success      bool                 `json:"success"`
	GenerationID string               `json:"generationId"`
	Variants     map[string]string    `json:"variants"`
	Metadata     dto.GenerateMetadata `json:"metadata"`
}

type Upload struct {
	Success  bool               `json:"success"`
	ImageID  string             `json:"imageId"`
	Variants []string           `json:"variants"`
	Metadata dto.UploadMetadata `json:"metadata"`
}

type Batch struct {
	Success    bool                  `json:"success"`
	BatchID    string                `json:"batchId"`
	Total      int                   `json:"total"`
	Successful int                   `json:"successful"`
	Failed     int                   `json:"failed"`
	Results    []dto.BatchItemResult `json:"results"`
}

type Templates struct {
	Templates []entity.Template `json:"templates"`
	Total     int               `json:"total"`
	Category  string            `json:"category"`
	Language  string            `json:"language"`
}

type Fonts struct {
	Fonts []entity.FontPreset `json:"fonts"`
}

type Categories struct {
	Categories []entity.Category `json:"categories"`
}

type Languages struct {
	Languages []entity.Language `json:"languages"`
}

type Formats struct {
	Formats map[string]entity.OutputFormat `json:"formats"`
}
