// Package s3 is the S3-compatible implementation of [blob.Store] backed by
// the MinIO client.
//
// "Folders" are key prefixes; EnsureFolder verifies the bucket once and
// returns the prefix for the audio run to upload under.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store implements blob.Store over an S3-compatible bucket.
type Store struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// NewStore creates a Store from configuration.
func NewStore(cfg blob.S3Config) (*Store, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicBase := strings.TrimRight(cfg.PublicBaseURL, "/")
	if publicBase == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}

	return &Store{
		client:        minioClient,
		bucket:        cfg.Bucket,
		publicBaseURL: publicBase,
	}, nil
}

// EnsureFolder implements blob.Store. The returned id is the object key
// prefix "parentID/name"; the bucket is created if missing.
func (s *Store) EnsureFolder(ctx context.Context, parentID, name string) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
	}

	prefix := name
	if parentID != "" {
		prefix = strings.TrimRight(parentID, "/") + "/" + name
	}
	return prefix, nil
}

// Upload implements blob.Store.
func (s *Store) Upload(ctx context.Context, folderID, filename string, data []byte, mimeType string) (string, error) {
	objectName := filename
	if folderID != "" {
		objectName = strings.TrimRight(folderID, "/") + "/" + filename
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	return s.publicBaseURL + "/" + escapePath(objectName), nil
}

// escapePath escapes each path segment while keeping separators intact.
func escapePath(objectName string) string {
	segments := strings.Split(objectName, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

var _ blob.Store = (*Store)(nil)
