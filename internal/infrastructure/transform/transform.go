// Package transform implements the raster pipeline: an ordered list of
// named operations applied to an owned image value. Each step consumes its
// input and yields a new owned output; no step aliases another's pixels.
package transform

import (
	"image"

	"github.com/disintegration/imaging"
)

// Op is one named pipeline step.
type Op struct {
	Name  string
	Apply func(*image.NRGBA) *image.NRGBA
}

// Pipeline applies its steps in order.
type Pipeline []Op

func (p Pipeline) Apply(img *image.NRGBA) *image.NRGBA {
	for _, op := range p {
		img = op.Apply(img)
	}

	return img
}

// ResizeCover scales to fill w x h, cropping the overflow around center.
func ResizeCover(w, h int) Op {
	return Op{
		Name: "resize-cover",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.Fill(img, w, h, imaging.Center, imaging.Lanczos)
		},
	}
}

// ResizeContain scales to fit inside w x h, preserving aspect ratio.
func ResizeContain(w, h int) Op {
	return Op{
		Name: "resize-contain",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.Fit(img, w, h, imaging.Lanczos)
		},
	}
}

// Resize scales to exactly w x h.
func Resize(w, h int) Op {
	return Op{
		Name: "resize",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.Resize(img, w, h, imaging.Lanczos)
		},
	}
}

// Sharpen applies an unsharp mask with the given sigma.
func Sharpen(sigma float64) Op {
	return Op{
		Name: "sharpen",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.Sharpen(img, sigma)
		},
	}
}

// Contrast takes a multiplier (1.0 = unchanged, 1.1 = +10%).
func Contrast(factor float64) Op {
	return Op{
		Name: "contrast",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.AdjustContrast(img, (factor-1)*100)
		},
	}
}

// Brightness takes a multiplier (1.0 = unchanged, 1.02 = +2%).
func Brightness(factor float64) Op {
	return Op{
		Name: "brightness",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.AdjustBrightness(img, (factor-1)*100)
		},
	}
}

// Blur applies a gaussian blur with the given sigma.
func Blur(sigma float64) Op {
	return Op{
		Name: "blur",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.Blur(img, sigma)
		},
	}
}

// Gamma applies gamma correction.
func Gamma(g float64) Op {
	return Op{
		Name: "gamma",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.AdjustGamma(img, g)
		},
	}
}

// Rotate rotates counter-clockwise by the given degrees, filling the
// uncovered corners with black.
func Rotate(degrees float64) Op {
	return Op{
		Name: "rotate",
		Apply: func(img *image.NRGBA) *image.NRGBA {
			return imaging.Rotate(img, degrees, blackFill)
		},
	}
}
