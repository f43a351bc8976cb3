// Package storage 将提交文件转存到对象存储并返回可访问的 URL。
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"course-cms/config"
)

// ErrObjectNotFound 对象不存在
var ErrObjectNotFound = errors.New("object not found")

// Storage 提交文件的对象存储
type Storage interface {
	// Upload 写入 key 对应的对象并返回其公开访问 URL
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Close() error
}

// Object 回读的对象内容
type Object struct {
	Data        []byte
	ContentType string
}

// Reader 支持回读对象的存储（仅本地驱动）
type Reader interface {
	Get(ctx context.Context, key string) (*Object, error)
}

// New 按配置创建存储驱动；baseURL 用于推导本地驱动的文件访问前缀
func New(ctx context.Context, cfg *config.StorageConfig, baseURL string, logger *zap.Logger) (Storage, error) {
	var (
		s   Storage
		err error
	)
	switch cfg.Driver {
	case config.StorageS3:
		s, err = NewS3(ctx, cfg)
	case config.StorageB2:
		s, err = NewB2(ctx, cfg)
	case config.StorageLocal:
		publicURL := cfg.PublicURL
		if publicURL == "" {
			publicURL = strings.TrimRight(baseURL, "/") + "/files"
		}
		s, err = NewLocal(cfg.LocalPath, publicURL)
	default:
		return nil, fmt.Errorf("不支持的存储驱动: %s", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	logger.Info("对象存储已就绪",
		zap.String("driver", cfg.Driver),
		zap.String("bucket", cfg.Bucket),
	)
	return s, nil
}

var unsafeKeyChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// NewObjectKey 生成 "<uuid>-<文件名>" 形式的唯一对象键，文件名中的特殊字符替换为下划线
func NewObjectKey(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = unsafeKeyChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == "/" {
		base = "upload"
	}
	return uuid.NewString() + "-" + base
}

func joinURL(prefix, key string) string {
	return strings.TrimRight(prefix, "/") + "/" + key
}
