package serving

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/infrastructure/caching"
	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

type fakeBlobStore struct {
	objects  map[string][]byte
	metadata map[string]map[string]string
	uploaded map[string]time.Time
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		objects:  map[string][]byte{},
		metadata: map[string]map[string]string{},
		uploaded: map[string]time.Time{},
	}
}

func (s *fakeBlobStore) Upload(_ context.Context, key string, data []byte, _ string, metadata map[string]string) error {
	s.objects[key] = data
	s.metadata[key] = metadata

	return nil
}

func (s *fakeBlobStore) Download(_ context.Context, key string) ([]byte, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}

	return data, nil
}

func (s *fakeBlobStore) Head(_ context.Context, key string) (*repo.BlobInfo, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}

	return &repo.BlobInfo{Key: key, Size: int64(len(data))}, nil
}

func (s *fakeBlobStore) List(_ context.Context, prefix string, limit int) ([]repo.BlobInfo, error) {
	var infos []repo.BlobInfo
	for key, data := range s.objects {
		if strings.HasPrefix(key, prefix) && len(infos) < limit {
			infos = append(infos, repo.BlobInfo{
				Key:      key,
				Size:     int64(len(data)),
				Metadata: s.metadata[key],
				Uploaded: s.uploaded[key],
			})
		}
	}

	return infos, nil
}

func encodeAs(t *testing.T, format imaging.Format) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(40, 40, color.NRGBA{10, 200, 100, 255}), format))

	return buf.Bytes()
}

func desktopClient() dto.ClientCapabilities {
	return dto.ClientCapabilities{DevicePixelRatio: 1}
}

func webpClient() dto.ClientCapabilities {
	return dto.ClientCapabilities{SupportsWebP: true, DevicePixelRatio: 1}
}

func TestServe_NotFound(t *testing.T) {
	uc := New(newFakeBlobStore(), logger.New("error"))

	_, err := uc.Serve(context.Background(), "gen_1_abc_instagram-post.jpg", desktopClient(), "")
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)
}

func TestServe_GeneratedAsset(t *testing.T) {
	blob := newFakeBlobStore()
	blob.objects["generated/gen_1_instagram-post.jpg"] = encodeAs(t, imaging.JPEG)
	uc := New(blob, logger.New("error"))

	result, err := uc.Serve(context.Background(), "gen_1_instagram-post.jpg", desktopClient(), "")
	require.NoError(t, err)

	assert.False(t, result.NotModified)
	assert.Equal(t, "image/jpeg", result.ContentType)
	assert.NotEmpty(t, result.Data)
	assert.NotEmpty(t, result.ETag)
	assert.Contains(t, result.Headers["Cache-Control"], "max-age=86400")
	assert.Equal(t, "Accept, User-Agent, DPR, Save-Data", result.Headers["Vary"])
}

func TestServe_TemplatesFallback(t *testing.T) {
	blob := newFakeBlobStore()
	blob.objects["templates/minimal/clean.jpg"] = encodeAs(t, imaging.JPEG)
	uc := New(blob, logger.New("error"))

	result, err := uc.Serve(context.Background(), "minimal/clean.jpg", desktopClient(), "")
	require.NoError(t, err)
	assert.Contains(t, result.Headers["Cache-Control"], "max-age=2592000")
}

func TestServe_ETagRoundTrip(t *testing.T) {
	data := encodeAs(t, imaging.JPEG)
	blob := newFakeBlobStore()
	blob.objects["generated/a.jpg"] = data
	uc := New(blob, logger.New("error"))

	first, err := uc.Serve(context.Background(), "a.jpg", desktopClient(), "")
	require.NoError(t, err)
	assert.Equal(t, caching.ETag(data), first.ETag)

	second, err := uc.Serve(context.Background(), "a.jpg", desktopClient(), first.ETag)
	require.NoError(t, err)
	assert.True(t, second.NotModified)
	assert.Empty(t, second.Data)
	assert.Equal(t, first.ETag, second.ETag)
}

func TestServe_WebPNegotiation(t *testing.T) {
	blob := newFakeBlobStore()
	blob.objects["generated/a.jpg"] = encodeAs(t, imaging.JPEG)
	uc := New(blob, logger.New("error"))

	result, err := uc.Serve(context.Background(), "a.jpg", webpClient(), "")
	require.NoError(t, err)

	assert.Equal(t, "image/webp", result.ContentType)
	assert.Equal(t, "true", result.Headers["X-Optimized"])

	_, format, err := image.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, "webp", format)
}

func TestServe_JPEGPassthroughWithoutWebP(t *testing.T) {
	data := encodeAs(t, imaging.JPEG)
	blob := newFakeBlobStore()
	blob.objects["generated/a.jpg"] = data
	uc := New(blob, logger.New("error"))

	result, err := uc.Serve(context.Background(), "a.jpg", desktopClient(), "")
	require.NoError(t, err)

	assert.Equal(t, data, result.Data)
	assert.Equal(t, "false", result.Headers["X-Optimized"])
}

func TestServe_PNGStaysPNGWithoutWebP(t *testing.T) {
	data := encodeAs(t, imaging.PNG)
	blob := newFakeBlobStore()
	blob.objects["generated/a.png"] = data
	uc := New(blob, logger.New("error"))

	result, err := uc.Serve(context.Background(), "a.png", desktopClient(), "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", result.ContentType)
	assert.Equal(t, data, result.Data)
}

func TestServe_AVIFNegotiatesToWebP(t *testing.T) {
	blob := newFakeBlobStore()
	blob.objects["generated/a.jpg"] = encodeAs(t, imaging.JPEG)
	uc := New(blob, logger.New("error"))

	client := dto.ClientCapabilities{SupportsAVIF: true, DevicePixelRatio: 1}

	result, err := uc.Serve(context.Background(), "a.jpg", client, "")
	require.NoError(t, err)
	assert.Equal(t, "image/webp", result.ContentType)
}

func TestServe_MobileHighDPIReencodes(t *testing.T) {
	data := encodeAs(t, imaging.JPEG)
	blob := newFakeBlobStore()
	blob.objects["generated/a.jpg"] = data
	uc := New(blob, logger.New("error"))

	client := dto.ClientCapabilities{IsMobile: true, DevicePixelRatio: 2}

	result, err := uc.Serve(context.Background(), "a.jpg", client, "")
	require.NoError(t, err)

	// sharpening forces a re-encode even though the format is unchanged
	assert.Equal(t, "true", result.Headers["X-Optimized"])
	assert.NotEqual(t, data, result.Data)
}

func TestTemplates(t *testing.T) {
	blob := newFakeBlobStore()
	blob.objects["templates/minimal/clean.jpg"] = []byte("x")
	blob.metadata["templates/minimal/clean.jpg"] = map[string]string{
		"name": "Clean", "category": "minimal", "language": "en", "dimensions": "1080x1080", "tags": "clean,simple",
	}
	blob.uploaded["templates/minimal/clean.jpg"] = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	blob.objects["templates/minimal/claro.jpg"] = []byte("y")
	blob.metadata["templates/minimal/claro.jpg"] = map[string]string{"language": "es"}

	uc := New(blob, logger.New("error"))

	all, err := uc.Templates(context.Background(), "minimal", "all")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	english, err := uc.Templates(context.Background(), "minimal", "en")
	require.NoError(t, err)
	require.Len(t, english, 1)

	tpl := english[0]
	assert.Equal(t, "minimal/clean.jpg", tpl.ID)
	assert.Equal(t, "Clean", tpl.Name)
	assert.Equal(t, []string{"clean", "simple"}, tpl.Tags)
	assert.Equal(t, "2026-01-02T03:04:05Z", tpl.CreatedAt)
}

func TestTemplates_MetadataDefaults(t *testing.T) {
	blob := newFakeBlobStore()
	blob.objects["templates/bare.jpg"] = []byte("x")

	uc := New(blob, logger.New("error"))

	templates, err := uc.Templates(context.Background(), "all", "all")
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tpl := templates[0]
	assert.Equal(t, "bare.jpg", tpl.ID)
	assert.Equal(t, "bare.jpg", tpl.Name)
	assert.Equal(t, "general", tpl.Category)
	assert.Equal(t, "en", tpl.Language)
	assert.Equal(t, "1200x800", tpl.Dimensions)
}
