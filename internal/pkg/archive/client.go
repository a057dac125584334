// Package archive keeps a copy of every exported report in an S3 bucket.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// objectPutter is the part of the S3 API the archive needs.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Client uploads rendered reports
type Client struct {
	s3Client objectPutter
	config   *Config
	now      func() time.Time
}

// UploadResult contains the result of a successful upload
type UploadResult struct {
	BucketName string
	ObjectKey  string
	Size       int64
}

// NewClient creates a new archive client
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("report archive is disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// MinIO and Backblaze B2 need path-style URLs
			o.UsePathStyle = true
		}
	})

	log.Infof("[Archive] storing exported reports in bucket %s", cfg.BucketName)
	return newClient(s3Client, cfg), nil
}

func newClient(s3Client objectPutter, cfg *Config) *Client {
	return &Client{s3Client: s3Client, config: cfg, now: time.Now}
}

// Store uploads a rendered PDF under a unique key.
func (c *Client) Store(ctx context.Context, fileName string, content []byte) (*UploadResult, error) {
	key := c.config.ObjectKey(uuid.NewString(), fileName, c.now())

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.config.BucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String("application/pdf"),
		ContentLength: aws.Int64(int64(len(content))),
		Metadata: map[string]string{
			"file-name":     url.PathEscape(fileName), // metadata must be ASCII
			"upload-source": "plz-erfassung-export",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload report to S3: %w", err)
	}

	log.Infof("[Archive] stored s3://%s/%s", c.config.BucketName, key)
	return &UploadResult{
		BucketName: c.config.BucketName,
		ObjectKey:  key,
		Size:       int64(len(content)),
	}, nil
}
