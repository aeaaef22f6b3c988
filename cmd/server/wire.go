//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改Provider后执行 `wire gen ./cmd/server` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/xiebiao/library/internal/domain/catalog"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/router"
)

// infrastructureSet 数据库连接与可选的Redis缓存
var infrastructureSet = wire.NewSet(
	provideDB,
	provideCache,
)

// repositorySet 仓储,启用缓存时包装为读穿透缓存
var repositorySet = wire.NewSet(
	provideAuthorRepository,
	provideBookRepository,
	providePublisherRepository,
	provideTxManager,
)

// domainSet 领域服务
var domainSet = wire.NewSet(
	catalog.NewAuthorService,
	catalog.NewBookService,
	catalog.NewPublisherService,
)

// handlerSet 页面处理器与路由
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewPublisherHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 组装整个应用
// cfg和log由main创建(启动日志与链路追踪需要先于依赖注入)
func InitializeApp(cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
