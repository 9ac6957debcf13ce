package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"travel_wonders_go/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AssetStore holds hosted media. Seed and import push hero and profile
// images through it, and the /assets/* route reads from it.
type AssetStore interface {
	UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*AssetResult, error)
	Get(ctx context.Context, key string) (io.ReadCloser, string, error) // Returns reader, content-type, error
}

// AssetResult contains information about the stored asset
type AssetResult struct {
	Key      string // Storage key/path
	FileName string
	FileSize int64
	MimeType string
	URL      string // Public URL
}

// Assets is the global asset store instance
var Assets AssetStore

// InitializeAssets sets up the asset store based on configuration
func InitializeAssets(cfg *config.Config) {
	if cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != "" {
		r2, err := NewR2Assets(cfg)
		if err != nil {
			log.Printf("[WARNING] Failed to initialize R2 storage: %v. Falling back to local storage.", err)
			Assets = NewLocalAssets(cfg.UploadDir)
			log.Println("Asset storage established (Local filesystem - fallback)")
			return
		}

		// Test R2 connection with a HeadBucket call
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, err = r2.client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: &cfg.R2BucketName,
		})
		if err != nil {
			log.Printf("[WARNING] R2 bucket connection test failed: %v. Falling back to local storage.", err)
			Assets = NewLocalAssets(cfg.UploadDir)
			log.Println("Asset storage established (Local filesystem - fallback)")
			return
		}

		Assets = r2
		log.Printf("Asset storage established (Cloudflare R2 - bucket: %s)", cfg.R2BucketName)
	} else {
		Assets = NewLocalAssets(cfg.UploadDir)
		log.Printf("Asset storage established (Local filesystem - path: %s)", cfg.UploadDir)
	}
}

// AssetKey builds a collision-free storage key under a collection
// prefix, keeping the original extension.
func AssetKey(collection, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%s%s", collection, uuid.New().String(), ext)
}

// HostAsset stores raw content in the global asset store and returns
// its public URL. With no store initialized it returns the empty
// string, so callers can keep whatever URL they already had.
func HostAsset(ctx context.Context, collection, originalName, contentType string, data []byte) (string, error) {
	if Assets == nil {
		return "", nil
	}
	key := AssetKey(collection, originalName)
	result, err := Assets.UploadReader(ctx, bytes.NewReader(data), key, contentType, int64(len(data)))
	if err != nil {
		return "", err
	}
	return result.URL, nil
}

func contentTypeForExt(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	}
	return "application/octet-stream"
}

// R2Assets implements AssetStore for Cloudflare R2
type R2Assets struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewR2Assets creates a new R2 asset store
func NewR2Assets(cfg *config.Config) (*R2Assets, error) {
	// R2 endpoint format: https://<account_id>.r2.cloudflarestorage.com
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)

	creds := credentials.NewStaticCredentialsProvider(
		cfg.R2AccessKeyID,
		cfg.R2SecretAccessKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto" region
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &R2Assets{
		client:    client,
		bucket:    cfg.R2BucketName,
		publicURL: cfg.R2PublicURL,
	}, nil
}

// UploadReader uploads content from a reader to R2
func (r *R2Assets) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*AssetResult, error) {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	}

	_, err := r.client.PutObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to upload to R2: %w", err)
	}

	return &AssetResult{
		Key:      key,
		FileName: filepath.Base(key),
		FileSize: size,
		MimeType: contentType,
		URL:      r.GetPublicURL(key),
	}, nil
}

// Get retrieves a file from R2 and returns a reader
func (r *R2Assets) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}

	result, err := r.client.GetObject(ctx, input)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object from R2: %w", err)
	}

	contentType := "application/octet-stream"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}

	return result.Body, contentType, nil
}

// GetPublicURL returns the bucket URL for a key. Empty when the bucket
// has no public hostname configured; those objects stay served through
// the /assets/* route.
func (r *R2Assets) GetPublicURL(key string) string {
	if r.publicURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.publicURL, "/"), key)
	}
	return "/assets/" + key
}

// LocalAssets implements AssetStore for the local filesystem
type LocalAssets struct {
	baseDir string
}

// NewLocalAssets creates a new local asset store
func NewLocalAssets(baseDir string) *LocalAssets {
	return &LocalAssets{baseDir: baseDir}
}

// UploadReader saves content from a reader to the local filesystem
func (l *LocalAssets) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*AssetResult, error) {
	fullPath := filepath.Join(l.baseDir, key)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &AssetResult{
		Key:      key,
		FileName: filepath.Base(key),
		FileSize: written,
		MimeType: contentType,
		URL:      l.GetPublicURL(key),
	}, nil
}

// Get retrieves a file from the local filesystem and returns a reader
func (l *LocalAssets) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath := filepath.Join(l.baseDir, key)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	return file, contentTypeForExt(key), nil
}

// GetPublicURL returns the serving path for a locally stored file
func (l *LocalAssets) GetPublicURL(key string) string {
	return "/assets/" + strings.TrimPrefix(key, "/")
}
