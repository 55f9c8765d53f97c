package persistent

import (
	"context"
	"io"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

type fakeObject struct {
	data        []byte
	contentType string
	metadata    map[string]string
	uploaded    time.Time
}

type fakeS3 struct {
	objects map[string]fakeObject
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string]fakeObject{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}

	f.objects[aws.ToString(in.Key)] = fakeObject{
		data:        data,
		contentType: aws.ToString(in.ContentType),
		metadata:    in.Metadata,
		uploaded:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	obj, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}

	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(string(obj.data)))}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	obj, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NotFound{}
	}

	uploaded := obj.uploaded

	return &s3.HeadObjectOutput{
		ContentLength: aws.Int64(int64(len(obj.data))),
		ContentType:   aws.String(obj.contentType),
		Metadata:      obj.metadata,
		LastModified:  &uploaded,
	}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	prefix := aws.ToString(in.Prefix)

	keys := make([]string, 0, len(f.objects))
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	contents := make([]types.Object, 0, len(keys))
	for _, key := range keys {
		obj := f.objects[key]
		uploaded := obj.uploaded
		contents = append(contents, types.Object{
			Key:          aws.String(key),
			Size:         aws.Int64(int64(len(obj.data))),
			LastModified: &uploaded,
		})
	}

	return &s3.ListObjectsV2Output{Contents: contents}, nil
}

func newTestBlobRepo() (*BlobRepo, *fakeS3) {
	fake := newFakeS3()

	return &BlobRepo{client: fake, bucket: "images"}, fake
}

func TestBlobRepo_ListReturnsMetadata(t *testing.T) {
	r, _ := newTestBlobRepo()
	ctx := context.Background()

	metadata := map[string]string{
		"name":     "Sunset",
		"category": "motivational",
		"language": "es",
	}
	require.NoError(t, r.Upload(ctx, "templates/sunset.jpg", []byte("jpegdata"), "image/jpeg", metadata))

	infos, err := r.List(ctx, "templates/", 50)
	require.NoError(t, err)
	require.Len(t, infos, 1)

	assert.Equal(t, "templates/sunset.jpg", infos[0].Key)
	assert.Equal(t, int64(len("jpegdata")), infos[0].Size)
	assert.Equal(t, "image/jpeg", infos[0].ContentType)
	assert.Equal(t, metadata, infos[0].Metadata)
	assert.False(t, infos[0].Uploaded.IsZero())
}

func TestBlobRepo_ListFiltersPrefix(t *testing.T) {
	r, _ := newTestBlobRepo()
	ctx := context.Background()

	require.NoError(t, r.Upload(ctx, "templates/a.jpg", []byte("a"), "image/jpeg", nil))
	require.NoError(t, r.Upload(ctx, "generated/b.jpg", []byte("b"), "image/jpeg", nil))

	infos, err := r.List(ctx, "templates/", 50)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "templates/a.jpg", infos[0].Key)
}

func TestBlobRepo_DownloadMissingKey(t *testing.T) {
	r, _ := newTestBlobRepo()

	_, err := r.Download(context.Background(), "templates/missing.jpg")
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)
}

func TestBlobRepo_HeadMissingKey(t *testing.T) {
	r, _ := newTestBlobRepo()

	_, err := r.Head(context.Background(), "templates/missing.jpg")
	assert.ErrorIs(t, err, errs.ErrRecordNotFound)
}

func TestBlobRepo_DownloadRoundTrip(t *testing.T) {
	r, _ := newTestBlobRepo()
	ctx := context.Background()

	require.NoError(t, r.Upload(ctx, "uploads/u1/1_original.png", []byte("pngdata"), "image/png", nil))

	data, err := r.Download(ctx, "uploads/u1/1_original.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("pngdata"), data)
}
