package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"movequote/internal/usecase/interfaces"
)

// ErrNoBucket indicates MEDIA_BUCKET is not configured; callers should fall
// back to the local store.
var ErrNoBucket = errors.New("MEDIA_BUCKET is not configured")

// S3Store uploads quote media to an S3 bucket.
//
// Env vars:
//   - MEDIA_BUCKET (required)
//   - AWS_REGION (default: us-east-1)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566)
//   - MEDIA_BASE_URL (optional public URL prefix overriding the bucket URL)
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IBlobStore = (*S3Store)(nil)

func NewS3Store(ctx context.Context) (*S3Store, error) {
	bucket := os.Getenv("MEDIA_BUCKET")
	if bucket == "" {
		return nil, ErrNoBucket
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// Localstack and MinIO resolve buckets by path, not vhost.
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(os.Getenv("MEDIA_BASE_URL"), "/"),
	}, nil
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key), nil
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key), nil
}
