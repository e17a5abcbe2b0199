package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ClientMinio is the subset of *minio.Client used by the store.
type ClientMinio interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

const defaultContentType = "application/octet-stream"

// publicReadPolicy grants anonymous GetObject on every key in the bucket.
const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// MinioObjectStore keeps portfolio images in a public-read S3 bucket.
type MinioObjectStore struct {
	client        ClientMinio
	bucket        string
	publicBaseURL string
	logger        *zap.Logger
}

// NewMinioObjectStore connects to an S3-compatible endpoint.
func NewMinioObjectStore(endpoint, accessKey, secretKey, bucket, publicBaseURL string, useSSL bool, logger *zap.Logger) (*MinioObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client for %s: %w", endpoint, err)
	}
	return NewObjectStoreWithClient(client, bucket, publicBaseURL, logger), nil
}

// NewObjectStoreWithClient wraps an existing client.
func NewObjectStoreWithClient(client ClientMinio, bucket, publicBaseURL string, logger *zap.Logger) *MinioObjectStore {
	return &MinioObjectStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// EnsureBucket creates the bucket if needed and makes it publicly readable.
func (s *MinioObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
		s.logger.Info("bucket created", zap.String("bucket", s.bucket))
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, fmt.Sprintf(publicReadPolicy, s.bucket)); err != nil {
		return fmt.Errorf("failed to set public policy on %s: %w", s.bucket, err)
	}
	return nil
}

// Upload stores the object under name.
func (s *MinioObjectStore) Upload(ctx context.Context, name string, reader io.Reader, size int64, contentType string) error {
	if contentType == "" {
		contentType = defaultContentType
	}
	_, err := s.client.PutObject(ctx, s.bucket, name, reader, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", name, err)
	}
	s.logger.Debug("object uploaded", zap.String("bucket", s.bucket), zap.String("object", name), zap.Int64("size", size))
	return nil
}

// PublicURL returns the anonymous-read address of name. No network call is made.
func (s *MinioObjectStore) PublicURL(name string) string {
	return s.publicBaseURL + "/" + url.PathEscape(s.bucket) + "/" + url.PathEscape(name)
}

// Remove deletes the object. Removing a missing key is not an error.
func (s *MinioObjectStore) Remove(ctx context.Context, name string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, name, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	s.logger.Debug("object removed", zap.String("bucket", s.bucket), zap.String("object", name))
	return nil
}
