package rdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/config"
	apperrors "github.com/xiebiao/library/pkg/errors"
)

// newTestDB 每个测试使用独立的sqlite文件
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{
			Driver:          config.DriverSQLite,
			DBName:          "library",
			Path:            filepath.Join(t.TempDir(), "library.db"),
			ConnMaxLifetime: time.Hour,
		},
	}

	db, err := NewDB(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestRepositories_DatabaseErrorCode(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	authors := NewAuthorRepository(db)
	books := NewBookRepository(db)
	publishers := NewPublisherRepository(db)

	require.NoError(t, Close(db))

	assertDBError := func(t *testing.T, err error, message string) {
		t.Helper()
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeDatabaseError, appErr.Code)
		assert.Equal(t, message, appErr.Message)
		assert.False(t, apperrors.IsNotFound(err))
	}

	_, _, err := authors.FindByID(ctx, 3)
	assertDBError(t, err, "查询作者失败: id=3")

	_, err = books.FindByName(ctx, "go")
	assertDBError(t, err, `搜索图书失败: keyword="go"`)

	err = publishers.Save(ctx, &catalog.Publisher{ID: 9, Name: "Gone"})
	assertDBError(t, err, "更新出版社失败: id=9")

	err = books.DeleteByID(ctx, 4)
	assertDBError(t, err, "删除图书失败: id=4")
}
