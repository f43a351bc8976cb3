package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/kurin/blazer/b2"

	"course-cms/config"
)

// B2Storage Backblaze B2 驱动
type B2Storage struct {
	client    *b2.Client
	bucket    *b2.Bucket
	publicURL string
}

// NewB2 创建 B2 驱动：access_key 为 keyID，secret_key 为 applicationKey
func NewB2(ctx context.Context, cfg *config.StorageConfig) (*B2Storage, error) {
	client, err := b2.NewClient(ctx, cfg.AccessKey, cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("创建 B2 客户端失败: %w", err)
	}

	bucket, err := client.Bucket(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("获取 B2 bucket 失败: %w", err)
	}

	return &B2Storage{client: client, bucket: bucket, publicURL: cfg.PublicURL}, nil
}

func (s *B2Storage) Upload(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	obj := s.bucket.Object(key)
	w := obj.NewWriter(ctx)

	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return "", fmt.Errorf("写入 B2 对象失败: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("提交 B2 对象失败: %w", err)
	}

	if s.publicURL != "" {
		return joinURL(s.publicURL, key), nil
	}
	return obj.URL(), nil
}

func (s *B2Storage) Close() error { return nil }
