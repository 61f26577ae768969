package archive

import (
	"bytes"
	"context"
	"fmt"

	appconfig "aqua-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Archive stores generated reports in an S3-compatible bucket
// (R2, MinIO, AWS). Reports are write-once: uploads overwrite by key,
// nothing here deletes.
type S3Archive struct {
	client *s3.Client
	bucket string
}

// New builds the archive from config. Returns an error when the
// endpoint or credentials are missing so callers can run without one.
func New(ctx context.Context, cfg *appconfig.Config) (*S3Archive, error) {
	if cfg.Archive.Endpoint == "" || cfg.Archive.AccessKey == "" {
		return nil, fmt.Errorf("archive storage not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
	})

	return &S3Archive{client: client, bucket: cfg.Archive.Bucket}, nil
}

// Upload writes one object to the archive bucket
func (a *S3Archive) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	return err
}
