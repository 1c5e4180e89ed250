package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Storage keeps uploads in an S3-compatible bucket (MinIO, R2, AWS).
type S3Storage struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// S3Config carries the connection parameters for an S3-compatible store.
type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
	BaseURL   string
}

// NewS3Storage connects to the store and ensures the bucket exists.
func NewS3Storage(cfg S3Config) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &S3Storage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Save uploads the object and returns its public URL.
func (s *S3Storage) Save(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	return s.URL(filename), nil
}

// List returns stored object names. Listing errors soft-fail to an empty
// list, matching the local driver.
func (s *S3Storage) List(ctx context.Context) ([]string, error) {
	files := []string{}
	for object := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return []string{}, nil
		}
		files = append(files, object.Key)
	}
	return files, nil
}

// Delete removes a stored object.
func (s *S3Storage) Delete(ctx context.Context, filename string) error {
	if _, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{}); err != nil {
		return ErrNotFound
	}
	return s.client.RemoveObject(ctx, s.bucket, filename, minio.RemoveObjectOptions{})
}

// Stat returns metadata for a stored object.
func (s *S3Storage) Stat(ctx context.Context, filename string) (FileInfo, error) {
	info, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{})
	if err != nil {
		return FileInfo{}, ErrNotFound
	}

	return FileInfo{
		Filename:  filename,
		Size:      info.Size,
		CreatedAt: info.LastModified,
		URL:       s.URL(filename),
	}, nil
}

// URL builds the public URL of a stored object.
func (s *S3Storage) URL(filename string) string {
	return s.baseURL + "/" + filename
}
