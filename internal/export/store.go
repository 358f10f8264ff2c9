// Package export stores rendered diagram SVGs in an S3-compatible bucket.
// It backs the "Export Diagram" action and is entirely optional: the
// gateway wires it only when an endpoint is configured.
package export

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
	UseSSL    bool
}

type Store struct {
	client *minio.Client
	bucket string
	region string
	prefix string

	initOnce sync.Once
	initErr  error

	now func() time.Time
}

func NewStore(cfg S3Config) (*Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("export endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("export access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("export bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init export client: %w", err)
	}

	return &Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: strings.Trim(strings.TrimSpace(cfg.Prefix), "/"),
		now:    time.Now,
	}, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("store is nil")
	}
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// PutDiagram stores one rendered SVG under a timestamped key and returns
// the object key.
func (s *Store) PutDiagram(ctx context.Context, name string, svg []byte) (string, error) {
	if s == nil {
		return "", fmt.Errorf("store is nil")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("name is required")
	}
	if len(svg) == 0 {
		return "", fmt.Errorf("empty diagram")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("ensure bucket: %w", err)
	}

	key := s.objectKey(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(svg), int64(len(svg)), minio.PutObjectOptions{
		ContentType: "image/svg+xml",
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// ListDiagrams returns stored object keys in lexical order.
func (s *Store) ListDiagrams(ctx context.Context) ([]string, error) {
	if s == nil {
		return nil, fmt.Errorf("store is nil")
	}
	if err := s.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	prefix := ""
	if s.prefix != "" {
		prefix = s.prefix + "/"
	}
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *Store) objectKey(name string) string {
	stamp := s.now().UTC().Format("20060102T150405")
	key := fmt.Sprintf("%s-%s.svg", name, stamp)
	if s.prefix != "" {
		return s.prefix + "/" + key
	}
	return key
}
