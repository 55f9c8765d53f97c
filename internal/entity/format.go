package entity

// ImageFormat is an encode target. AVIF is recognized on the wire but has
// no encoder; negotiation never selects it for output.
type ImageFormat string

const (
	FormatJPEG ImageFormat = "jpeg"
	FormatPNG  ImageFormat = "png"
	FormatWEBP ImageFormat = "webp"
	FormatGIF  ImageFormat = "gif"
	FormatAVIF ImageFormat = "avif"
)

// ContentType returns the MIME type for the format.
func (f ImageFormat) ContentType() string {
	switch f {
	case FormatWEBP:
		return "image/webp"
	case FormatPNG:
		return "image/png"
	case FormatGIF:
		return "image/gif"
	case FormatAVIF:
		return "image/avif"
	default:
		return "image/jpeg"
	}
}

// Extension returns the file suffix for the format.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatWEBP:
		return "webp"
	case FormatGIF:
		return "gif"
	case FormatAVIF:
		return "avif"
	default:
		return "jpg"
	}
}

// ResizeFit selects how a resize fills the target box.
type ResizeFit string

const (
	FitCover   ResizeFit = "cover"
	FitContain ResizeFit = "contain"
)

// OutputFormat is a platform preset. The catalog of presets is immutable
// and loaded at startup.
type OutputFormat struct {
	Key        string      `json:"key"`
	Name       string      `json:"name"`
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Format     ImageFormat `json:"format"`
	Quality    int         `json:"quality"`
	Profile    string      `json:"optimize_for"`
	FileSuffix string      `json:"file_name_suffix"`
}

// Variant is one encoded output derived from a base raster.
type Variant struct {
	Data    []byte
	Width   int
	Height  int
	Format  ImageFormat
	Quality int
	Profile string
}
