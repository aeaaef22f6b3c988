// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
//  1. HTTP指标：请求总数、耗时分布、处理中请求数（由middleware.Metrics记录）
//  2. 目录业务指标：作者/图书/出版社的写操作次数（由领域服务记录）
//  3. 缓存指标：Redis读缓存命中/未命中/错误次数（由缓存装饰器记录）
//
// # 命名规范
//
//   - Counter以`_total`结尾
//   - Histogram以单位结尾（`_seconds`）
//   - 标签只使用有限取值（method、entity、result），不要用ID做标签
//
// # 使用示例
//
//	metrics.InitMetrics()
//	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.RecordCatalogMutation("book", "save", err)
//
// 未调用InitMetrics时所有Record*函数都是空操作，单元测试无需初始化全局Registry。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// 结果标签取值
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	// initOnce 防止重复注册（promauto重复注册会panic）
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/books/list）、status（200/302/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CatalogMutationsTotal 目录写操作总数（Counter）
	// 标签：entity（author/book/publisher）、operation（save/delete/add_book）、result（success/failure）
	CatalogMutationsTotal *prometheus.CounterVec

	// 缓存指标

	// CacheRequestsTotal 缓存读取总数（Counter）
	// 标签：entity（author/book/publisher）、result（hit/miss/error）
	CacheRequestsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到默认Registry
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 1ms、10ms、100ms、500ms、1s、5s、10s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogMutationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_mutations_total",
				Help: "作者/图书/出版社写操作总数",
			},
			[]string{"entity", "operation", "result"},
		)

		CacheRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_requests_total",
				Help: "目录缓存读取总数",
			},
			[]string{"entity", "result"},
		)
	})
}

// RecordCatalogMutation 记录一次目录写操作
func RecordCatalogMutation(entity, operation string, err error) {
	if CatalogMutationsTotal == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	CatalogMutationsTotal.WithLabelValues(entity, operation, result).Inc()
}

// RecordCacheResult 记录一次缓存读取结果（hit/miss/error）
func RecordCacheResult(entity, result string) {
	if CacheRequestsTotal == nil {
		return
	}
	CacheRequestsTotal.WithLabelValues(entity, result).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
