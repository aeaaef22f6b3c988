package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/library/docs"
	"github.com/xiebiao/library/internal/infrastructure/config"
	"github.com/xiebiao/library/internal/interface/http/handler"
	"github.com/xiebiao/library/internal/interface/http/middleware"
	"github.com/xiebiao/library/internal/interface/http/view"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/response"
)

// Handlers 页面处理器集合
type Handlers struct {
	Author    *handler.AuthorHandler
	Book      *handler.BookHandler
	Publisher *handler.PublisherHandler
}

// New 创建gin引擎并注册全部路由
//
// 中间件顺序:RequestID → Tracing → Logger → Metrics → Recovery
// Recovery在最内层,panic被渲染成500后仍会被日志、指标和Span记录
func New(cfg *config.Config, log *zap.Logger, h Handlers) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.SetHTMLTemplate(view.MustLoad())

	r.Use(middleware.RequestID())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	r.Use(middleware.Logger(log))
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.Use(middleware.Metrics())
	}
	r.Use(middleware.Recovery(log))

	registerRoutes(r, h)

	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}
	if cfg.Server.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

func registerRoutes(r *gin.Engine, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/books/list")
	})

	author := r.Group("/author")
	{
		author.GET("/list", h.Author.List)
		author.GET("/showFormForAdd", h.Author.ShowFormForAdd)
		author.GET("/showFormForUpdate", h.Author.ShowFormForUpdate)
		author.POST("/save", h.Author.Save)
		author.GET("/delete", h.Author.Delete)
		author.POST("/addBook", h.Author.AddBook)
	}

	books := r.Group("/books")
	{
		books.GET("/list", h.Book.List)
		books.GET("/showFormForAdd", h.Book.ShowFormForAdd)
		books.GET("/showFormForUpdate", h.Book.ShowFormForUpdate)
		books.POST("/save", h.Book.Save)
		books.GET("/delete", h.Book.Delete)
		books.GET("/search", h.Book.Search)
	}

	publisher := r.Group("/publisher")
	{
		publisher.GET("/list", h.Publisher.List)
		publisher.GET("/showFormForAdd", h.Publisher.ShowFormForAdd)
		publisher.GET("/showFormForUpdate", h.Publisher.ShowFormForUpdate)
		publisher.POST("/save", h.Publisher.Save)
		publisher.GET("/delete", h.Publisher.Delete)
	}
}
