package rdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.Background()
	sql := func() (string, int64) { return "SELECT * FROM books", 3 }

	t.Run("错误按error记录", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)
		l.Trace(ctx, time.Now(), sql, errors.New("no such table"))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, entry.Level)
		assert.Equal(t, "SELECT * FROM books", entry.ContextMap()["sql"])
		assert.Equal(t, "gorm", entry.LoggerName)
	})

	t.Run("记录不存在不算错误", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)
		l.Trace(ctx, time.Now(), sql, gorm.ErrRecordNotFound)
		assert.Zero(t, logs.Len())
	})

	t.Run("慢查询按warn记录", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)
		l.Trace(ctx, time.Now().Add(-time.Second), sql, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("Info级别记录所有SQL", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Info)
		l.Trace(ctx, time.Now(), sql, nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
		assert.Equal(t, int64(3), logs.All()[0].ContextMap()["rows"])
	})

	t.Run("Silent不记录", func(t *testing.T) {
		l, logs := newObservedGormLogger(gormlogger.Warn)
		silent := l.LogMode(gormlogger.Silent)
		silent.Trace(ctx, time.Now(), sql, errors.New("ignored"))
		assert.Zero(t, logs.Len())
	})
}

func TestGormLogger_Messages(t *testing.T) {
	l, logs := newObservedGormLogger(gormlogger.Warn)

	l.Info(context.Background(), "hidden %d", 1)
	l.Warn(context.Background(), "pool %s", "exhausted")
	l.Error(context.Background(), "failed %s", "migration")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "pool exhausted", logs.All()[0].Message)
	assert.Equal(t, "failed migration", logs.All()[1].Message)
}
