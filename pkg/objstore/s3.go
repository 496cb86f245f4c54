package objstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"MonthlyMasti/config"
)

// S3Client 基于 S3 兼容接口的对象存储实现，支持 MinIO 自定义 endpoint
type S3Client struct {
	api        *s3.Client
	bucket     string
	publicBase string
}

func NewS3Client(ctx context.Context) (*S3Client, error) {
	cfg := config.Cfg

	awsConfig, err := awscfg.LoadDefaultConfig(ctx,
		awscfg.WithRegion(cfg.S3Region),
		awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object storage config: %w", err)
	}

	api := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := cfg.S3PublicBase
	if publicBase == "" && cfg.S3BaseEndpoint != "" {
		publicBase = fmt.Sprintf("%s/%s", strings.TrimRight(cfg.S3BaseEndpoint, "/"), cfg.S3Bucket)
	}

	return &S3Client{
		api:        api,
		bucket:     cfg.S3Bucket,
		publicBase: publicBase,
	}, nil
}

func (c *S3Client) Upload(ctx context.Context, path string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(path),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := c.api.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload object %s: %w", path, err)
	}
	return nil
}

func (c *S3Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.publicBase, "/"), strings.TrimLeft(path, "/"))
}
