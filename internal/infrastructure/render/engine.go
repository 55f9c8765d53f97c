// Package render implements the text layout engine: greedy word wrap,
// vertical block placement and glyph drawing with shadow and outline passes
// onto a raster surface.
package render

import (
	"context"
	"fmt"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/infrastructure/transform"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

const (
	_defaultJPEGQuality = 92

	// maxWidthRatio is the wrap width as a share of the canvas width.
	_maxWidthRatio = 0.8
)

// Engine composites quote text onto base images. Fonts are parsed once at
// construction; faces are derived per render for the requested size.
type Engine struct {
	regular *opentype.Font
	medium  *opentype.Font
	bold    *opentype.Font
	italic  *opentype.Font

	canvasWidth  int
	canvasHeight int
	jpegQuality  int
}

func NewEngine(canvasWidth, canvasHeight int) (*Engine, error) {
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return nil, fmt.Errorf("render - NewEngine - canvas %dx%d: %w",
			canvasWidth, canvasHeight, errs.ErrRender)
	}

	e := &Engine{
		canvasWidth:  canvasWidth,
		canvasHeight: canvasHeight,
		jpegQuality:  _defaultJPEGQuality,
	}

	for _, f := range []struct {
		dst **opentype.Font
		ttf []byte
	}{
		{&e.regular, goregular.TTF},
		{&e.medium, gomedium.TTF},
		{&e.bold, gobold.TTF},
		{&e.italic, goitalic.TTF},
	} {
		parsed, err := opentype.Parse(f.ttf)
		if err != nil {
			return nil, fmt.Errorf("render - NewEngine - opentype.Parse: %w", err)
		}
		*f.dst = parsed
	}

	return e, nil
}

// Overlay composites text onto the base image and returns JPEG bytes.
// overlayStyle darkens the base for readability (gradient, solid, none).
func (e *Engine) Overlay(ctx context.Context, base []byte, text string, style entity.TextStyle, overlayStyle string) ([]byte, error) {
	if style.LineHeight <= 0 || style.FontSize <= 0 {
		return nil, fmt.Errorf("render - Overlay - line height %.1f, font size %.1f: %w",
			style.LineHeight, style.FontSize, &errs.ValidationError{Reason: "font size and line height must be positive"})
	}

	decoded, err := transform.Decode(base)
	if err != nil {
		return nil, fmt.Errorf("render - Overlay - transform.Decode: %w", err)
	}

	// 1. stretch the base onto the target canvas
	canvas := imaging.Resize(decoded, e.canvasWidth, e.canvasHeight, imaging.Lanczos)

	// 2. darken for text readability
	applyOverlayStyle(canvas, overlayStyle)

	// 3. face for the requested style
	face, err := e.face(style)
	if err != nil {
		return nil, fmt.Errorf("render - Overlay - e.face: %w", err)
	}
	defer face.Close()

	// 4. greedy wrap at 80% of the canvas width
	drawer := &font.Drawer{Face: face}
	measure := func(s string) float64 {
		return fixedToFloat(drawer.MeasureString(s))
	}
	lines := WrapText(measure, text, _maxWidthRatio*float64(e.canvasWidth))

	// 5. block placement
	anchorX := float64(e.canvasWidth) / 2
	if style.X != nil {
		anchorX = float64(*style.X)
	}
	startY := BlockStart(style.Position, e.canvasHeight, style.LineHeight, len(lines), style.Y)

	// 6. per line: shadow, outline, fill
	for i, line := range lines {
		lineY := startY + float64(i)*style.LineHeight
		e.drawLine(canvas, face, line, anchorX, lineY, style)
	}

	encoded, err := transform.Encode(canvas, entity.FormatJPEG, e.jpegQuality)
	if err != nil {
		return nil, fmt.Errorf("render - Overlay - transform.Encode: %w", err)
	}

	return encoded, nil
}

// CanvasSize returns the render surface dimensions.
func (e *Engine) CanvasSize() (int, int) {
	return e.canvasWidth, e.canvasHeight
}

func (e *Engine) face(style entity.TextStyle) (font.Face, error) {
	src := e.regular

	switch style.FontWeight {
	case "bold", "700", "800", "900":
		src = e.bold
	case "500", "600", "medium":
		src = e.medium
	}
	if style.FontStyle == "italic" || style.FontWeight == "italic" {
		src = e.italic
	}

	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    style.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
