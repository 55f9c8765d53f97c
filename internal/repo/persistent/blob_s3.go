package persistent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/quoteviral/quoteviral/internal/repo"
	"github.com/quoteviral/quoteviral/pkg/s3client"
	"github.com/quoteviral/quoteviral/pkg/types/errs"
)

// s3API is the subset of the S3 client the repo calls.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// BlobRepo stores image objects in a single S3 bucket. Logical buckets
// (uploads, generated, templates) are key prefixes chosen by the use-cases.
type BlobRepo struct {
	client s3API
	bucket string
}

func NewBlobRepo(s3c *s3client.S3Client, bucket string) *BlobRepo {
	return &BlobRepo{client: s3c.Client, bucket: bucket}
}

func (r *BlobRepo) Upload(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
		Metadata:      metadata,
	})
	if err != nil {
		return fmt.Errorf("BlobRepo - Upload - r.client.PutObject: %w", err)
	}

	return nil
}

func (r *BlobRepo) Download(ctx context.Context, key string) ([]byte, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, errs.ErrRecordNotFound
		}

		return nil, fmt.Errorf("BlobRepo - Download - r.client.GetObject: %w", err)
	}
	defer result.Body.Close()

	b, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("BlobRepo - Download - io.ReadAll: %w", err)
	}

	return b, nil
}

func (r *BlobRepo) Head(ctx context.Context, key string) (*repo.BlobInfo, error) {
	result, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return nil, errs.ErrRecordNotFound
		}

		return nil, fmt.Errorf("BlobRepo - Head - r.client.HeadObject: %w", err)
	}

	info := &repo.BlobInfo{
		Key:      key,
		Size:     aws.ToInt64(result.ContentLength),
		Metadata: result.Metadata,
	}
	if result.ContentType != nil {
		info.ContentType = *result.ContentType
	}
	if result.LastModified != nil {
		info.Uploaded = *result.LastModified
	}

	return info, nil
}

// List heads every listed key to recover the user metadata and content type
// ListObjectsV2 does not return. Keys deleted between the list and the head
// are skipped.
func (r *BlobRepo) List(ctx context.Context, prefix string, limit int) ([]repo.BlobInfo, error) {
	result, err := r.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(r.bucket),
		Prefix:  aws.String(prefix),
		MaxKeys: aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, fmt.Errorf("BlobRepo - List - r.client.ListObjectsV2: %w", err)
	}

	infos := make([]repo.BlobInfo, 0, len(result.Contents))
	for _, obj := range result.Contents {
		key := aws.ToString(obj.Key)

		head, err := r.Head(ctx, key)
		if err != nil {
			if errors.Is(err, errs.ErrRecordNotFound) {
				continue
			}

			return nil, fmt.Errorf("BlobRepo - List - r.Head: %w", err)
		}

		info := repo.BlobInfo{
			Key:         key,
			Size:        aws.ToInt64(obj.Size),
			ContentType: head.ContentType,
			Metadata:    head.Metadata,
		}
		if obj.LastModified != nil {
			info.Uploaded = *obj.LastModified
		}
		infos = append(infos, info)
	}

	return infos, nil
}
