package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

func testStyle() entity.TextStyle {
	return entity.TextStyle{
		FontSize:   24,
		FontWeight: "normal",
		Color:      "#FFFFFF",
		Alignment:  entity.AlignCenter,
		Position:   entity.PositionCenter,
		LineHeight: 30,
		Shadow:     &entity.Shadow{Color: "rgba(0,0,0,0.8)", Blur: 4, OffsetX: 2, OffsetY: 2},
	}
}

func testBase(t *testing.T, w, h int) []byte {
	t.Helper()

	img := imaging.New(w, h, color.NRGBA{40, 80, 120, 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))

	return buf.Bytes()
}

func TestNewEngine_RejectsBadCanvas(t *testing.T) {
	_, err := NewEngine(0, 1080)
	assert.ErrorIs(t, err, errs.ErrRender)

	_, err = NewEngine(1080, -1)
	assert.ErrorIs(t, err, errs.ErrRender)
}

func TestOverlay_ProducesCanvasSizedJPEG(t *testing.T) {
	engine, err := NewEngine(320, 240)
	require.NoError(t, err)

	out, err := engine.Overlay(context.Background(), testBase(t, 100, 100), "Stay hungry", testStyle(), "gradient")
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 320, decoded.Bounds().Dx())
	assert.Equal(t, 240, decoded.Bounds().Dy())
}

func TestOverlay_DarkensUnderGradient(t *testing.T) {
	engine, err := NewEngine(64, 64)
	require.NoError(t, err)

	// bright base; the gradient overlay must darken the bottom rows
	img := imaging.New(64, 64, color.NRGBA{200, 200, 200, 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))

	style := testStyle()
	style.Shadow = nil

	out, err := engine.Overlay(context.Background(), buf.Bytes(), "", style, "gradient")
	require.NoError(t, err)

	decoded, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)

	top := color.NRGBAModel.Convert(decoded.At(2, 2)).(color.NRGBA)
	bottom := color.NRGBAModel.Convert(decoded.At(2, 61)).(color.NRGBA)
	assert.Less(t, bottom.R, top.R, "bottom rows should be darker than top under the gradient ramp")
}

func TestOverlay_RejectsBadStyle(t *testing.T) {
	engine, err := NewEngine(320, 240)
	require.NoError(t, err)

	style := testStyle()
	style.LineHeight = 0

	_, err = engine.Overlay(context.Background(), testBase(t, 100, 100), "text", style, "none")

	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestOverlay_RejectsUndecodableBase(t *testing.T) {
	engine, err := NewEngine(320, 240)
	require.NoError(t, err)

	_, err = engine.Overlay(context.Background(), []byte("not an image"), "text", testStyle(), "none")
	assert.ErrorIs(t, err, errs.ErrDecode)
}

func TestOverlay_FaceSelection(t *testing.T) {
	engine, err := NewEngine(160, 120)
	require.NoError(t, err)

	base := testBase(t, 100, 100)

	// all weight and style spellings must map to a usable face
	for _, weight := range []string{"normal", "bold", "700", "900", "500", "600", "medium", "italic"} {
		style := testStyle()
		style.FontWeight = weight

		_, err := engine.Overlay(context.Background(), base, "w", style, "none")
		assert.NoError(t, err, "weight %q", weight)
	}
}

func TestCanvasSize(t *testing.T) {
	engine, err := NewEngine(1080, 1920)
	require.NoError(t, err)

	w, h := engine.CanvasSize()
	assert.Equal(t, 1080, w)
	assert.Equal(t, 1920, h)
}
