package main

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/infrastructure/persistence/rdb"
	"github.com/xiebiao/library/internal/infrastructure/persistence/redis"
)

// provideDB 创建数据库连接,cleanup关闭连接池
func provideDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	db, err := rdb.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := rdb.Close(db); err != nil {
			log.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// provideCache cache.enabled为false时返回nil,仓储不做缓存装饰
func provideCache(cfg *config.Config, log *zap.Logger) (*redis.Cache, func(), error) {
	if !cfg.Cache.Enabled {
		return nil, func() {}, nil
	}

	client, err := redis.NewClient(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn("关闭Redis连接失败", zap.Error(err))
		}
	}
	return redis.NewCache(client, cfg.Cache.TTL, log), cleanup, nil
}

func provideAuthorRepository(db *gorm.DB, cache *redis.Cache) catalog.AuthorRepository {
	repo := rdb.NewAuthorRepository(db)
	if cache == nil {
		return repo
	}
	return redis.NewCachedAuthorRepository(repo, cache)
}

func provideBookRepository(db *gorm.DB, cache *redis.Cache) catalog.BookRepository {
	repo := rdb.NewBookRepository(db)
	if cache == nil {
		return repo
	}
	return redis.NewCachedBookRepository(repo, cache)
}

func providePublisherRepository(db *gorm.DB, cache *redis.Cache) catalog.PublisherRepository {
	repo := rdb.NewPublisherRepository(db)
	if cache == nil {
		return repo
	}
	return redis.NewCachedPublisherRepository(repo, cache)
}

// provideTxManager 启用缓存时,事务结束后统一失效缓存
func provideTxManager(db *gorm.DB, cache *redis.Cache) catalog.TxManager {
	tm := rdb.NewTxManager(db)
	if cache == nil {
		return tm
	}
	return redis.NewCachedTxManager(tm, cache)
}
