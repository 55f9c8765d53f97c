package render

import (
	"strings"

	"golang.org/x/image/math/fixed"

	"github.com/quoteviral/quoteviral/internal/entity"
)

// WrapText splits text into lines no wider than maxWidth using greedy
// word accumulation. Words are never broken: a single word wider than
// maxWidth occupies its own line unmodified. The final accumulated line is
// always committed, so empty input yields one blank line.
func WrapText(measure func(string) float64, text string, maxWidth float64) []string {
	words := strings.Fields(text)

	var lines []string
	currentLine := ""

	for _, word := range words {
		testLine := word
		if currentLine != "" {
			testLine = currentLine + " " + word
		}

		if measure(testLine) > maxWidth && currentLine != "" {
			lines = append(lines, currentLine)
			currentLine = word
		} else {
			currentLine = testLine
		}
	}

	return append(lines, currentLine)
}

// BlockStart computes the y coordinate of the first line's anchor.
// Lines are drawn with a middle baseline at y + i*lineHeight.
//
//   - top: first anchor one line height from the top
//   - center: block vertically centered, first anchor half a line height
//     above true center
//   - bottom: block's top edge at canvasHeight - blockHeight
//   - custom: the caller-supplied y, bypassing preset math
func BlockStart(position entity.Position, canvasHeight int, lineHeight float64, lineCount int, customY *int) float64 {
	blockHeight := float64(lineCount) * lineHeight

	switch position {
	case entity.PositionTop:
		return lineHeight
	case entity.PositionBottom:
		return float64(canvasHeight) - blockHeight
	case entity.PositionCustom:
		if customY != nil {
			return float64(*customY)
		}
		return (float64(canvasHeight)-blockHeight)/2 + lineHeight/2
	default:
		return (float64(canvasHeight)-blockHeight)/2 + lineHeight/2
	}
}

// alignedX shifts the anchor by the measured line width per alignment.
func alignedX(alignment entity.Alignment, anchorX, lineWidth float64) float64 {
	switch alignment {
	case entity.AlignLeft:
		return anchorX
	case entity.AlignRight:
		return anchorX - lineWidth
	default:
		return anchorX - lineWidth/2
	}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
