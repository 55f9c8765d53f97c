package transform

import (
	"image/color"

	"github.com/quoteviral/quoteviral/internal/entity"
)

var blackFill = color.NRGBA{0, 0, 0, 255}

// EnhancementProfile builds the pipeline for a platform output preset.
// Unknown profiles get a plain cover resize.
func EnhancementProfile(profile string, width, height int) Pipeline {
	switch profile {
	case "social-media":
		return Pipeline{ResizeCover(width, height), Sharpen(1.1)}
	case "story":
		return Pipeline{ResizeCover(width, height), Contrast(1.1), Brightness(1.02)}
	case "professional":
		return Pipeline{ResizeCover(width, height), Contrast(1.1), Sharpen(1.2)}
	case "print":
		return Pipeline{ResizeContain(width, height)}
	default:
		return Pipeline{ResizeCover(width, height)}
	}
}

// CategoryProfile builds the mood enhancement applied to the base image
// before text overlay. Unknown categories pass through unchanged.
func CategoryProfile(category string) Pipeline {
	switch category {
	case "motivational":
		return Pipeline{Contrast(1.2), Brightness(1.1), Sharpen(1.1)}
	case "inspirational":
		return Pipeline{Brightness(1.05), Contrast(0.95), Gamma(1.1)}
	case "business":
		return Pipeline{Contrast(1.1), Sharpen(1.2)}
	case "love":
		return Pipeline{Brightness(1.08), Contrast(0.9)}
	case "success":
		return Pipeline{Contrast(1.3), Brightness(1.05), Sharpen(1.3)}
	case "minimalist":
		return Pipeline{Contrast(0.9), Brightness(1.02)}
	default:
		return nil
	}
}

// BackgroundTreatment prepares the base image for the overlay style.
// Gradient and solid styles darken during the overlay pass instead.
func BackgroundTreatment(style string) Pipeline {
	switch style {
	case "blur":
		return Pipeline{Blur(10), Brightness(0.8)}
	default:
		return nil
	}
}

// UploadPreprocess standardizes a fresh upload before variants are derived.
func UploadPreprocess(category string) Pipeline {
	p := Pipeline{ResizeCover(2048, 2048)}

	switch category {
	case "portrait":
		p = append(p, Sharpen(1.2), Brightness(1.05))
	case "landscape":
		p = append(p, Contrast(1.1), Blur(0.5))
	}

	return p
}

// UploadVariantSpec describes one derived upload variant.
type UploadVariantSpec struct {
	Name    string
	Width   int
	Height  int
	Format  entity.ImageFormat
	Quality int
}

// UploadVariants is the fixed set derived from every upload.
func UploadVariants() []UploadVariantSpec {
	return []UploadVariantSpec{
		{Name: "original", Format: entity.FormatPNG, Quality: 100},
		{Name: "optimized", Format: entity.FormatWEBP, Quality: 85},
		{Name: "thumbnail", Width: 300, Height: 300, Format: entity.FormatWEBP, Quality: 75},
		{Name: "mobile", Width: 800, Height: 800, Format: entity.FormatWEBP, Quality: 80},
	}
}
