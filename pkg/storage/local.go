package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	objectsBucket      = []byte("objects")
	contentTypesBucket = []byte("content_types")
)

// LocalStorage 基于 bbolt 单文件的本地驱动，供开发与测试环境使用；
// 文件通过 GET /files/:key 回读
type LocalStorage struct {
	db        *bolt.DB
	publicURL string
}

// NewLocal 打开（或创建）本地存储文件
func NewLocal(path, publicURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("创建存储目录失败: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("打开本地存储失败: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{objectsBucket, contentTypesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("初始化本地存储失败: %w", err)
	}

	return &LocalStorage{db: db, publicURL: publicURL}, nil
}

func (s *LocalStorage) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("读取上传内容失败: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(objectsBucket).Put([]byte(key), data); err != nil {
			return err
		}
		return tx.Bucket(contentTypesBucket).Put([]byte(key), []byte(contentType))
	})
	if err != nil {
		return "", fmt.Errorf("写入本地存储失败: %w", err)
	}
	return joinURL(s.publicURL, key), nil
}

// Get 读取对象内容；返回的数据在事务外仍然有效
func (s *LocalStorage) Get(ctx context.Context, key string) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var obj *Object
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(objectsBucket).Get([]byte(key))
		if data == nil {
			return ErrObjectNotFound
		}
		obj = &Object{
			Data:        bytes.Clone(data),
			ContentType: string(tx.Bucket(contentTypesBucket).Get([]byte(key))),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *LocalStorage) Close() error {
	return s.db.Close()
}
