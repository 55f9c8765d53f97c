package dto

import "time"

// Caller identifies the requesting client for rate limiting and the usage
// log.
type Caller struct {
	ClientID  string
	UserAgent string
}

// ClientCapabilities is parsed from request headers and drives format and
// quality negotiation for served assets.
type ClientCapabilities struct {
	SupportsWebP     bool
	SupportsAVIF     bool
	IsMobile         bool
	DevicePixelRatio float64
	SaveData         bool
}

// ServeResult is an optimized asset ready for the wire. NotModified is set
// when the client's cached copy is current; Data is empty in that case.
type ServeResult struct {
	Data        []byte
	ContentType string
	ETag        string
	NotModified bool
	Headers     map[string]string
}

// UploadParams carries one multipart upload.
type UploadParams struct {
	Data         []byte
	OriginalName string
	ContentType  string
	Size         int64
	UserID       string
	Category     string
}

// UploadResult reports the stored variants of one upload.
type UploadResult struct {
	ImageID  string         `json:"imageId"`
	Variants []string       `json:"variants"`
	Metadata UploadMetadata `json:"metadata"`
}

type UploadMetadata struct {
	OriginalSize   int64          `json:"originalSize"`
	ProcessedSizes map[string]int `json:"processedSizes"`
	Category       string         `json:"category"`
	UploadedAt     time.Time      `json:"uploadedAt"`
}
