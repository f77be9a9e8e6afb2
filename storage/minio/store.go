package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hupe1980/hubgo/storage"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Store implements storage.Store for MinIO and S3-compatible storage.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewStore creates a new MinIO store.
// bucket is the MinIO bucket name.
// rootPrefix is prepended to all keys (e.g. "mnist").
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	prefix := strings.Trim(rootPrefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Open connects to "minio://endpoint/bucket/prefix" or its TLS variant
// "minios://endpoint/bucket/prefix".
func Open(ctx context.Context, raw string) (*Store, error) {
	loc, err := storage.ParseLocation(raw)
	if err != nil {
		return nil, err
	}

	var secure bool
	switch loc.Scheme {
	case "minio":
	case "minios":
		secure = true
	default:
		return nil, fmt.Errorf("%w: %q", storage.ErrUnsupportedScheme, loc.Scheme)
	}

	bucket, prefix := splitBucket(loc.Path)
	if loc.Host == "" || bucket == "" {
		return nil, fmt.Errorf("storage url %q must name an endpoint and a bucket", raw)
	}

	client, err := minio.New(loc.Host, &minio.Options{
		Creds: credentials.NewChainCredentials([]credentials.Provider{
			&credentials.EnvMinio{},
			&credentials.EnvAWS{},
		}),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client for %s: %w", loc.Host, err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	return NewStore(client, bucket, prefix), nil
}

func splitBucket(p string) (bucket, prefix string) {
	p = strings.Trim(p, "/")
	bucket, prefix, _ = strings.Cut(p, "/")
	return bucket, prefix
}

func (s *Store) key(name string) (string, error) {
	cleaned, err := storage.CleanKey(name)
	if err != nil {
		return "", err
	}
	return s.prefix + cleaned, nil
}

// Get downloads the object stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := s.key(key)
	if err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, k, minio.GetObjectOptions{})
	if err != nil {
		return nil, s.translate(key, err)
	}
	defer func() { _ = obj.Close() }()

	// GetObject is lazy; a missing key surfaces on the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, s.translate(key, err)
	}
	return data, nil
}

// Set writes value under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}
	_, err = s.client.PutObject(ctx, s.bucket, k, bytes.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: "application/octet-stream",
	})
	return err
}

// Delete removes the object stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}
	err = s.client.RemoveObject(ctx, s.bucket, k, minio.RemoveObjectOptions{})
	if err != nil && !isNotFound(err) {
		return err
	}
	return nil
}

// List returns all keys with the given prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix + prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if name := strings.TrimPrefix(obj.Key, s.prefix); name != "" {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

func (s *Store) translate(key string, err error) error {
	if isNotFound(err) {
		return &storage.NotFoundError{Key: key}
	}
	return err
}

func isNotFound(err error) bool {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}
