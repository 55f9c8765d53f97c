package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/quoteviral/quoteviral/internal/entity"
)

// drawLine renders one wrapped line at (anchorX, lineY) where lineY is the
// middle of the glyph box. Pass order: shadow silhouette, outline, fill;
// the shadow covers both outline and fill shapes.
func (e *Engine) drawLine(dst *image.NRGBA, face font.Face, line string, anchorX, lineY float64, style entity.TextStyle) {
	drawer := &font.Drawer{Face: face}
	lineWidth := fixedToFloat(drawer.MeasureString(line))

	x := int(alignedX(style.Alignment, anchorX, lineWidth) + 0.5)

	// middle baseline: shift the baseline down by half the glyph extent
	metrics := face.Metrics()
	baselineShift := (metrics.Ascent - metrics.Descent).Round() / 2
	y := int(lineY+0.5) + baselineShift

	if style.Shadow != nil {
		e.drawShadow(dst, face, line, x, y, style)
	}

	if style.Outline != nil {
		strokeString(dst, face, line, x, y, parseColor(style.Outline.Color), style.Outline.Width)
	}

	drawString(dst, face, line, x, y, parseColor(style.Color))
}

// drawShadow renders the line's silhouette (outline and fill shapes) into a
// scratch layer at the shadow offset, blurs it, and composites it under the
// text.
func (e *Engine) drawShadow(dst *image.NRGBA, face font.Face, line string, x, y int, style entity.TextStyle) {
	shadow := style.Shadow
	shadowColor := parseColor(shadow.Color)

	layer := image.NewNRGBA(dst.Bounds())

	sx, sy := x+shadow.OffsetX, y+shadow.OffsetY
	if style.Outline != nil {
		strokeString(layer, face, line, sx, sy, shadowColor, style.Outline.Width)
	}
	drawString(layer, face, line, sx, sy, shadowColor)

	blurred := layer
	if shadow.Blur > 0 {
		// canvas shadowBlur is roughly twice a gaussian sigma
		blurred = imaging.Blur(layer, shadow.Blur/2)
	}

	draw.Draw(dst, dst.Bounds(), blurred, image.Point{}, draw.Over)
}

// strokeString approximates a stroke by stamping the glyphs at eight
// offsets around the fill position.
func strokeString(dst draw.Image, face font.Face, line string, x, y int, col color.Color, width int) {
	if width <= 0 {
		width = 1
	}

	for dx := -width; dx <= width; dx += width {
		for dy := -width; dy <= width; dy += width {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(dst, face, line, x+dx, y+dy, col)
		}
	}
}

func drawString(dst draw.Image, face font.Face, line string, x, y int, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}

	d.DrawString(line)
}

// applyOverlayStyle darkens the canvas in place so light text stays
// readable: gradient ramps to 40% black at the bottom, solid is a uniform
// 40% black wash.
func applyOverlayStyle(canvas *image.NRGBA, style string) {
	bounds := canvas.Bounds()
	height := bounds.Dy()

	switch style {
	case "gradient":
		for row := 0; row < height; row++ {
			alpha := 0.4 * float64(row) / float64(height)
			shadeRow(canvas, row, alpha)
		}
	case "solid":
		for row := 0; row < height; row++ {
			shadeRow(canvas, row, 0.4)
		}
	}
}

func shadeRow(canvas *image.NRGBA, row int, alpha float64) {
	bounds := canvas.Bounds()
	keep := 1 - alpha

	for col := bounds.Min.X; col < bounds.Max.X; col++ {
		offset := canvas.PixOffset(col, bounds.Min.Y+row)
		canvas.Pix[offset+0] = uint8(float64(canvas.Pix[offset+0]) * keep)
		canvas.Pix[offset+1] = uint8(float64(canvas.Pix[offset+1]) * keep)
		canvas.Pix[offset+2] = uint8(float64(canvas.Pix[offset+2]) * keep)
	}
}
