package s3client

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "s3organizer/config"
)

// Uploader streams an object body to the destination store. The pipeline
// receives one of these instead of constructing a client itself, so dry
// runs can use NopUploader without touching credentials.
type Uploader interface {
	Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error
}

// DestinationTarget is the parsed form of an s3://bucket/prefix/ path.
type DestinationTarget struct {
	Bucket string
	Prefix string
}

func (t DestinationTarget) String() string {
	return fmt.Sprintf("s3://%s/%s", t.Bucket, t.Prefix)
}

// NormalizePath ensures the destination path ends with a slash. Applying it
// twice yields the same string.
func NormalizePath(s3Path string) string {
	if !strings.HasSuffix(s3Path, "/") {
		s3Path += "/"
	}
	return s3Path
}

// ParsePath splits a normalized s3:// path into bucket and prefix. The
// prefix keeps its trailing slash and never starts with one.
func ParsePath(s3Path string) (DestinationTarget, error) {
	if !strings.HasPrefix(s3Path, "s3://") {
		return DestinationTarget{}, fmt.Errorf("S3 path must start with 's3://', got %q", s3Path)
	}

	parts := strings.Split(strings.TrimPrefix(NormalizePath(s3Path), "s3://"), "/")
	if parts[0] == "" {
		return DestinationTarget{}, fmt.Errorf("S3 path %q has no bucket name", s3Path)
	}

	return DestinationTarget{
		Bucket: parts[0],
		Prefix: strings.Join(parts[1:], "/"),
	}, nil
}

type Client struct {
	s3Client *s3.Client
	uploader *manager.Uploader
}

func New(cfg *appConfig.Config) (*Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}))
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	return &Client{
		s3Client: s3Client,
		uploader: manager.NewUploader(s3Client),
	}, nil
}

// Upload streams body to s3://bucket/key without buffering the whole object
// in memory.
func (c *Client) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	if contentType == "" {
		contentType = DetectContentType(key)
	}

	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

// NopUploader satisfies Uploader without performing any transfer. Dry runs
// inject it so no S3 client or credentials are ever constructed.
type NopUploader struct{}

func (NopUploader) Upload(ctx context.Context, bucket, key, contentType string, body io.Reader) error {
	return nil
}

// DetectContentType maps a file extension to a MIME type, used when the
// origin server does not report one.
func DetectContentType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	contentTypes := map[string]string{
		".txt":  "text/plain",
		".html": "text/html",
		".css":  "text/css",
		".js":   "application/javascript",
		".json": "application/json",
		".xml":  "application/xml",
		".pdf":  "application/pdf",
		".zip":  "application/zip",
		".tar":  "application/x-tar",
		".gz":   "application/gzip",
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".svg":  "image/svg+xml",
		".mp3":  "audio/mpeg",
		".mp4":  "video/mp4",
		".avi":  "video/x-msvideo",
		".mov":  "video/quicktime",
	}

	if contentType, exists := contentTypes[ext]; exists {
		return contentType
	}

	return "application/octet-stream"
}
