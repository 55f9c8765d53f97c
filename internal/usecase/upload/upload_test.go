package upload

import (
	"bytes"
	"context"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteviral/quoteviral/internal/dto"
	"github.com/quoteviral/quoteviral/internal/entity"
	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/pkg/logger"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

type fakeBlobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeBlobStore) Upload(_ context.Context, key string, data []byte, contentType string, _ map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	s.types[key] = contentType

	return nil
}

func (s *fakeBlobStore) Download(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}

	return data, nil
}

func (s *fakeBlobStore) Head(context.Context, string) (*repo.BlobInfo, error) {
	return nil, errs.ErrRecordNotFound
}

func (s *fakeBlobStore) List(context.Context, string, int) ([]repo.BlobInfo, error) {
	return nil, nil
}

type fakeMetadataRepo struct {
	created []*entity.Upload
}

func (r *fakeMetadataRepo) Create(_ context.Context, upload *entity.Upload) error {
	r.created = append(r.created, upload)

	return nil
}

type fakeTransactor struct{}

func (fakeTransactor) WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error {
	return f(ctx)
}

type fakeLimiter struct {
	decision entity.Decision
}

func (l *fakeLimiter) Check(context.Context, string, string) entity.Decision {
	return l.decision
}

type fakeTracker struct {
	events []entity.UsageEvent
}

func (t *fakeTracker) Track(_ context.Context, event entity.UsageEvent) {
	t.events = append(t.events, event)
}

func (t *fakeTracker) Performance(context.Context, string, time.Duration, map[string]string) {}

func pngUpload(t *testing.T) dto.UploadParams {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(100, 80, color.NRGBA{120, 120, 120, 255}), imaging.PNG))

	return dto.UploadParams{
		Data:         buf.Bytes(),
		OriginalName: "sunset.png",
		ContentType:  "image/png",
		Size:         int64(buf.Len()),
		UserID:       "u1",
		Category:     "landscape",
	}
}

type fixture struct {
	uc       *UseCase
	blob     *fakeBlobStore
	metadata *fakeMetadataRepo
	limiter  *fakeLimiter
	tracker  *fakeTracker
}

func newFixture() *fixture {
	f := &fixture{
		blob:     newFakeBlobStore(),
		metadata: &fakeMetadataRepo{},
		limiter:  &fakeLimiter{decision: entity.Decision{Allowed: true}},
		tracker:  &fakeTracker{},
	}
	f.uc = New(f.blob, f.metadata, fakeTransactor{}, f.limiter, f.tracker, logger.New("error"),
		WithClock(func() time.Time { return time.UnixMilli(1700000000000) }))

	return f
}

func TestUpload_DerivesAllVariants(t *testing.T) {
	f := newFixture()

	result, err := f.uc.Upload(context.Background(), dto.Caller{ClientID: "c1"}, pngUpload(t))
	require.NoError(t, err)

	assert.Equal(t, "u1/1700000000000", result.ImageID)
	assert.ElementsMatch(t, []string{"original", "optimized", "thumbnail", "mobile"}, result.Variants)

	// fixed variant set under uploads/<imageID>_<variant>.<ext>
	for key, contentType := range map[string]string{
		"uploads/u1/1700000000000_original.png":   "image/png",
		"uploads/u1/1700000000000_optimized.webp": "image/webp",
		"uploads/u1/1700000000000_thumbnail.webp": "image/webp",
		"uploads/u1/1700000000000_mobile.webp":    "image/webp",
	} {
		data, err := f.blob.Download(context.Background(), key)
		require.NoError(t, err, "missing %s", key)
		assert.NotEmpty(t, data)
		assert.Equal(t, contentType, f.blob.types[key])
	}

	require.Len(t, result.Metadata.ProcessedSizes, 4)
	assert.Equal(t, "landscape", result.Metadata.Category)
}

func TestUpload_PersistsMetadata(t *testing.T) {
	f := newFixture()

	result, err := f.uc.Upload(context.Background(), dto.Caller{ClientID: "c1"}, pngUpload(t))
	require.NoError(t, err)

	require.Len(t, f.metadata.created, 1)
	stored := f.metadata.created[0]
	assert.Equal(t, result.ImageID, stored.ImageID)
	assert.Equal(t, "u1", stored.UserID)
	assert.Equal(t, "sunset.png", stored.OriginalName)
	assert.Len(t, stored.VariantKeys, 4)
}

func TestUpload_AnonymousWhenNoUserID(t *testing.T) {
	f := newFixture()

	params := pngUpload(t)
	params.UserID = ""

	result, err := f.uc.Upload(context.Background(), dto.Caller{ClientID: "c1"}, params)
	require.NoError(t, err)
	assert.Equal(t, "anonymous/1700000000000", result.ImageID)
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	f := newFixture()

	params := pngUpload(t)
	params.ContentType = "application/zip"
	params.OriginalName = "archive.zip"

	_, err := f.uc.Upload(context.Background(), dto.Caller{ClientID: "c1"}, params)

	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Empty(t, f.blob.objects)
}

func TestUpload_RejectsOversizedFile(t *testing.T) {
	f := newFixture()

	params := pngUpload(t)
	params.Size = 11 * 1024 * 1024

	_, err := f.uc.Upload(context.Background(), dto.Caller{ClientID: "c1"}, params)

	var ve *errs.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestUpload_RejectsUndecodableData(t *testing.T) {
	f := newFixture()

	params := pngUpload(t)
	params.Data = []byte("not pixels at all")

	_, err := f.uc.Upload(context.Background(), dto.Caller{ClientID: "c1"}, params)
	assert.ErrorIs(t, err, errs.ErrDecode)
}

func TestUpload_RateLimited(t *testing.T) {
	f := newFixture()
	f.limiter.decision = entity.Decision{Allowed: false, RetryAfter: time.Minute, ResetAt: time.Now().Add(time.Minute)}

	_, err := f.uc.Upload(context.Background(), dto.Caller{ClientID: "c1"}, pngUpload(t))

	var rl *errs.RateLimitedError
	assert.ErrorAs(t, err, &rl)
	assert.Empty(t, f.blob.objects)
}
