package logger

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"course-cms/config"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(&config.LogConfig{Level: "debug", Format: "console"})
	if err != nil {
		t.Fatalf("NewLogger 应成功: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Error("期望 debug 级别启用")
	}

	if _, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"}); err == nil {
		t.Error("期望无效级别返回错误")
	}
	if _, err := NewLogger(&config.LogConfig{Level: "info", Format: "xml"}); err == nil {
		t.Error("期望无效格式返回错误")
	}
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cms.log")
	l, err := NewLogger(&config.LogConfig{Level: "info", Format: "json", Output: path})
	if err != nil {
		t.Fatalf("NewLogger 应成功: %v", err)
	}
	l.Debug("不应输出")
	l.Info("作业已提交", zap.Uint("submission_id", 7))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取日志文件失败: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("期望 1 行日志，实际 %d: %s", len(lines), data)
	}
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("日志应为 JSON: %v", err)
	}
	if entry["service"] != ServiceName || entry["msg"] != "作业已提交" {
		t.Errorf("日志字段不符: %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("期望 time 字段")
	}
}

func newObserved(level string, slow time.Duration) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, slow), logs
}

func sqlFunc() (string, int64) { return "SELECT 1", 1 }

func TestGormLogger_TraceError(t *testing.T) {
	l, logs := newObserved("info", 0)

	l.Trace(context.Background(), time.Now(), sqlFunc, errors.New("boom"))
	if logs.FilterMessage("SQL 执行失败").Len() != 1 {
		t.Errorf("期望记录 1 条错误日志，实际: %d", logs.Len())
	}
}

func TestGormLogger_RecordNotFoundIsQuiet(t *testing.T) {
	l, logs := newObserved("info", 0)

	l.Trace(context.Background(), time.Now(), sqlFunc, gorm.ErrRecordNotFound)
	if logs.Len() != 0 {
		t.Errorf("记录不存在不应输出日志，实际: %d", logs.Len())
	}
}

func TestGormLogger_SlowQuery(t *testing.T) {
	l, logs := newObserved("info", time.Millisecond)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFunc, nil)
	if logs.FilterMessage("慢查询").Len() != 1 {
		t.Errorf("期望记录慢查询，实际: %d", logs.Len())
	}
}

func TestGormLogger_DebugTracesEverything(t *testing.T) {
	l, logs := newObserved("debug", 0)

	l.Trace(context.Background(), time.Now(), sqlFunc, nil)
	if logs.FilterMessage("SQL").Len() != 1 {
		t.Errorf("debug 模式应记录每条 SQL，实际: %d", logs.Len())
	}

	silent := l.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), sqlFunc, errors.New("boom"))
	if logs.Len() != 1 {
		t.Errorf("Silent 模式不应输出日志，实际: %d", logs.Len())
	}
}
