package dto

import (
	"encoding/json"

	"github.com/quoteviral/quoteviral/internal/entity"
)

// ImageManipulation describes caller-requested base image adjustments
// applied before the text overlay.
type ImageManipulation struct {
	Rotation   float64 `json:"rotation,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	CropX      int     `json:"cropX,omitempty"`
	CropY      int     `json:"cropY,omitempty"`
	CropWidth  int     `json:"cropWidth,omitempty"`
	CropHeight int     `json:"cropHeight,omitempty"`
}

// GenerateParams is the /api/generate request body.
type GenerateParams struct {
	ImageID           string             `json:"imageId"`
	QuoteText         string             `json:"quoteText"`
	FontID            string             `json:"fontId"`
	FontSize          float64            `json:"fontSize,omitempty"`
	FontColor         string             `json:"fontColor,omitempty"`
	UserID            string             `json:"userId,omitempty"`
	ImageManipulation *ImageManipulation `json:"imageManipulation,omitempty"`
	Category          string             `json:"category,omitempty"`
	OverlayStyle      string             `json:"overlayStyle,omitempty"`
	BackgroundColor   string             `json:"backgroundColor,omitempty"`
	TextPosition      string             `json:"textPosition,omitempty"`
	TextAlignment     string             `json:"textAlignment,omitempty"`
	Language          string             `json:"language,omitempty"`
	OutputFormats     []string           `json:"outputFormats,omitempty"`
}

// ApplyDefaults fills the fields clients are allowed to omit.
func (p *GenerateParams) ApplyDefaults() {
	if p.Category == "" {
		p.Category = "motivational"
	}
	if p.OverlayStyle == "" {
		p.OverlayStyle = "gradient"
	}
	if p.BackgroundColor == "" {
		p.BackgroundColor = "#000000"
	}
	if p.TextPosition == "" {
		p.TextPosition = "center"
	}
	if p.TextAlignment == "" {
		p.TextAlignment = "center"
	}
	if p.Language == "" {
		p.Language = "en"
	}
	if len(p.OutputFormats) == 0 {
		p.OutputFormats = []string{"instagram-post", "print-quality"}
	}
}

// GenerateMetadata echoes the parameters a multi-format generation ran
// with.
type GenerateMetadata struct {
	Quote     string   `json:"quote"`
	Category  string   `json:"category"`
	Language  string   `json:"language"`
	CreatedAt string   `json:"createdAt"`
	Formats   []string `json:"formats"`
}

// GenerateResult is the outcome of one generation. For single-format
// requests Image holds the raw encoded bytes; for multi-format requests
// VariantURLs maps format keys to serving paths.
type GenerateResult struct {
	GenerationID string
	CacheHit     bool

	Image    []byte
	Format   entity.ImageFormat
	Filename string

	VariantURLs map[string]string
	Metadata    GenerateMetadata
}

// SingleFormat reports whether the result carries raw image bytes.
func (r *GenerateResult) SingleFormat() bool {
	return r.Image != nil
}

// BatchQuote accepts either a bare string or a {"text": ...} object, both
// shapes appear in batch payloads.
type BatchQuote struct {
	Text string
}

func (q *BatchQuote) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		q.Text = s
		return nil
	}

	var obj struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	q.Text = obj.Text

	return nil
}

// BatchParams is the /api/batch request body. Settings are merged into each
// item's GenerateParams.
type BatchParams struct {
	Images   []string       `json:"images"`
	Quotes   []BatchQuote   `json:"quotes"`
	Settings GenerateParams `json:"settings"`
}

// BatchItemResult reports one item's outcome without aborting siblings.
type BatchItemResult struct {
	Index  int            `json:"index"`
	Status string         `json:"status"` // fulfilled, rejected
	Data   *BatchItemData `json:"data"`
	Error  string         `json:"error,omitempty"`
}

type BatchItemData struct {
	GenerationID string `json:"imageId"`
	Size         int    `json:"size"`
}

// BatchResult is the aggregate outcome of a batch request.
type BatchResult struct {
	BatchID    string            `json:"batchId"`
	Total      int               `json:"total"`
	Successful int               `json:"successful"`
	Failed     int               `json:"failed"`
	Results    []BatchItemResult `json:"results"`
}
