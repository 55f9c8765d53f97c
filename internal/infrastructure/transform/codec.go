package transform

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WEBP decode support

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// Decode turns encoded bytes into an owned NRGBA raster.
func Decode(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("transform - Decode - imaging.Decode: %v: %w", err, errs.ErrDecode)
	}

	return imaging.Clone(img), nil
}

// Encode serializes a raster to the requested format. AVIF has no encoder;
// callers negotiate it away before reaching here.
func Encode(img image.Image, format entity.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case entity.FormatJPEG:
		err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
		if err != nil {
			return nil, fmt.Errorf("transform - Encode - imaging.Encode: %w", err)
		}
	case entity.FormatPNG:
		err := imaging.Encode(&buf, img, imaging.PNG)
		if err != nil {
			return nil, fmt.Errorf("transform - Encode - imaging.Encode: %w", err)
		}
	case entity.FormatGIF:
		err := imaging.Encode(&buf, img, imaging.GIF)
		if err != nil {
			return nil, fmt.Errorf("transform - Encode - imaging.Encode: %w", err)
		}
	case entity.FormatWEBP:
		err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)})
		if err != nil {
			return nil, fmt.Errorf("transform - Encode - webp.Encode: %w", err)
		}
	default:
		return nil, fmt.Errorf("transform - Encode - format %q: %w", format, errs.ErrUnknownFormat)
	}

	return buf.Bytes(), nil
}

// CanEncode reports whether the format has an encoder available.
func CanEncode(format entity.ImageFormat) bool {
	switch format {
	case entity.FormatJPEG, entity.FormatPNG, entity.FormatGIF, entity.FormatWEBP:
		return true
	default:
		return false
	}
}
