// Package storage uploads catalog images to Cloudflare R2.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	appconfig "pictocat/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

var ErrNotConfigured = errors.New("image storage is not configured")

// Uploader stores an object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type R2Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewR2Uploader returns nil, nil when R2 credentials are missing.
func NewR2Uploader(ctx context.Context, settings appconfig.Settings) (*R2Uploader, error) {
	if settings.CloudflareAccountID == "" || settings.R2AccessKeyID == "" || settings.R2BucketName == "" {
		return nil, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion("auto"),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.R2AccessKeyID, settings.R2AccessKeySecret, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", settings.CloudflareAccountID)
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	baseURL := strings.TrimRight(settings.CDNBaseURL, "/")
	if baseURL == "" {
		baseURL = endpoint + "/" + settings.R2BucketName
	}
	return &R2Uploader{client: client, bucket: settings.R2BucketName, baseURL: baseURL}, nil
}

func (u *R2Uploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if u == nil {
		return "", ErrNotConfigured
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to R2: %w", err)
	}
	return fmt.Sprintf("%s/%s", u.baseURL, key), nil
}

// ObjectKey builds a unique key for an uploaded image under its theme folder.
func ObjectKey(theme, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	base := slug.Make(strings.TrimSuffix(path.Base(filename), path.Ext(filename)))
	if base == "" {
		base = "image"
	}
	folder := slug.Make(theme)
	if folder == "" {
		folder = "misc"
	}
	return fmt.Sprintf("cats/%s/%s-%s%s", folder, base, uuid.NewString()[:8], ext)
}
