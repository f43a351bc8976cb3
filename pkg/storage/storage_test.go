package storage

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"course-cms/config"
)

func TestNewObjectKey(t *testing.T) {
	tests := []struct {
		filename string
		suffix   string
	}{
		{"hw1.pdf", "-hw1.pdf"},
		{"my report (final).docx", "-my_report_final_.docx"},
		{"../../etc/passwd", "-passwd"},
		{`C:\Users\me\essay.txt`, "-essay.txt"},
		{"", "-upload"},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			key := NewObjectKey(tt.filename)
			assert.True(t, strings.HasSuffix(key, tt.suffix), "key=%s", key)
			assert.Len(t, strings.TrimSuffix(key, tt.suffix), 36)
		})
	}

	assert.NotEqual(t, NewObjectKey("a.txt"), NewObjectKey("a.txt"), "同名文件的 key 不应重复")
}

func TestLocalStorage_UploadAndGet(t *testing.T) {
	s, err := NewLocal(filepath.Join(t.TempDir(), "nested", "files.db"), "http://localhost:8000/files/")
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	url, err := s.Upload(ctx, "k1-hw.txt", strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/files/k1-hw.txt", url)

	obj, err := s.Get(ctx, "k1-hw.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(obj.Data))
	assert.Equal(t, "text/plain", obj.ContentType)

	_, err = s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "files.db")

	s, err := NewLocal(path, "/files")
	require.NoError(t, err)
	_, err = s.Upload(context.Background(), "persist.txt", strings.NewReader("kept"), "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = NewLocal(path, "/files")
	require.NoError(t, err)
	defer s.Close()

	obj, err := s.Get(context.Background(), "persist.txt")
	require.NoError(t, err)
	assert.Equal(t, "kept", string(obj.Data))
}

func TestNew_LocalDriver(t *testing.T) {
	cfg := &config.StorageConfig{
		Driver:    config.StorageLocal,
		LocalPath: filepath.Join(t.TempDir(), "files.db"),
	}
	s, err := New(context.Background(), cfg, "http://cms.test", zap.NewNop())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.(Reader)
	assert.True(t, ok, "本地驱动应支持回读")

	url, err := s.Upload(context.Background(), "x.txt", strings.NewReader("x"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "http://cms.test/files/x.txt", url)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), &config.StorageConfig{Driver: "ftp"}, "", zap.NewNop())
	assert.Error(t, err)
}
