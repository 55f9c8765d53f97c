package transform

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

func TestDecode_RejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("definitely not pixels"))
	require.ErrorIs(t, err, errs.ErrDecode)

	// the codec's own message stays in the chain for logging
	assert.Greater(t, len(err.Error()), len(errs.ErrDecode.Error()))
	assert.Contains(t, err.Error(), "imaging.Decode")
}

func TestEncodeDecode(t *testing.T) {
	src := imaging.New(20, 10, color.NRGBA{255, 0, 0, 255})

	for _, format := range []entity.ImageFormat{
		entity.FormatJPEG, entity.FormatPNG, entity.FormatGIF, entity.FormatWEBP,
	} {
		t.Run(string(format), func(t *testing.T) {
			encoded, err := Encode(src, format, 90)
			require.NoError(t, err)
			require.NotEmpty(t, encoded)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, 20, decoded.Bounds().Dx())
			assert.Equal(t, 10, decoded.Bounds().Dy())
		})
	}
}

func TestEncode_AVIFUnsupported(t *testing.T) {
	src := imaging.New(4, 4, color.NRGBA{0, 0, 0, 255})

	_, err := Encode(src, entity.FormatAVIF, 80)
	assert.ErrorIs(t, err, errs.ErrUnknownFormat)
	assert.False(t, CanEncode(entity.FormatAVIF))
}

func TestPipeline_ResizeModes(t *testing.T) {
	src := imaging.New(400, 200, color.NRGBA{10, 20, 30, 255})

	cover := Pipeline{ResizeCover(100, 100)}.Apply(src)
	assert.Equal(t, 100, cover.Bounds().Dx())
	assert.Equal(t, 100, cover.Bounds().Dy())

	// contain preserves the 2:1 aspect ratio inside the box
	contain := Pipeline{ResizeContain(100, 100)}.Apply(src)
	assert.Equal(t, 100, contain.Bounds().Dx())
	assert.Equal(t, 50, contain.Bounds().Dy())
}

func TestUploadPreprocess_CategoryTweaks(t *testing.T) {
	// every category still lands on the 2048 master square
	for _, category := range []string{"", "portrait", "landscape", "other"} {
		src := imaging.New(300, 300, color.NRGBA{128, 128, 128, 255})

		out := UploadPreprocess(category).Apply(src)
		assert.Equal(t, 2048, out.Bounds().Dx(), "category %q", category)
		assert.Equal(t, 2048, out.Bounds().Dy(), "category %q", category)
	}
}
