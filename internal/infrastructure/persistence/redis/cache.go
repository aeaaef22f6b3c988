package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/library/pkg/circuitbreaker"
	"github.com/xiebiao/library/pkg/metrics"
)

// KeyPrefix 所有缓存键的前缀
const KeyPrefix = "library"

// generationKey 全局缓存代数
const generationKey = KeyPrefix + ":generation"

// Cache 目录读缓存(cache-aside)
//
// Key设计:library:v{generation}:{entity}:{id}
//
// 任何实体的写操作都会INCR代数,旧代数下的键不再被读取,随TTL自然过期。
// 作者快照包含其图书,图书快照包含作者与出版社,所以代数是全局的而不是按实体划分。
//
// 所有Redis错误只记录日志并按未命中处理,缓存不可用不影响业务。
// Redis调用经过熔断器,连续失败后在熔断期内直接跳过Redis。
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	log     *zap.Logger
	breaker *circuitbreaker.Breaker
}

// NewCache 创建目录缓存
func NewCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *Cache {
	log = log.Named("cache")
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
		breaker: circuitbreaker.New(circuitbreaker.Settings{
			Name: "redis-cache",
			OnStateChange: func(name string, from, to circuitbreaker.State) {
				log.Warn("缓存熔断器状态变化",
					zap.String("breaker", name),
					zap.Stringer("from", from),
					zap.Stringer("to", to),
				)
			},
		}),
	}
}

// call 通过熔断器执行一次Redis命令
// redis.Nil(键不存在)是正常结果,不计为失败
func (c *Cache) call(fn func() error) error {
	missing := false
	err := c.breaker.Execute(func() error {
		err := fn()
		if errors.Is(err, redis.Nil) {
			missing = true
			return nil
		}
		return err
	})
	if missing {
		return redis.Nil
	}
	return err
}

// generation 当前代数,键不存在时为0
func (c *Cache) generation(ctx context.Context) (int64, error) {
	var gen int64
	err := c.call(func() (err error) {
		gen, err = c.client.Get(ctx, generationKey).Int64()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func entryKey(gen int64, entity string, id uint) string {
	return fmt.Sprintf("%s:v%d:%s:%d", KeyPrefix, gen, entity, id)
}

// noGeneration 读取代数失败,本次未命中的结果不回填
const noGeneration int64 = -1

// get 读取快照到dest,返回本次读取使用的代数和是否命中
// 未命中时调用方必须用返回的代数回填,回填期间若发生换代,旧代数下的键不会再被读取
func (c *Cache) get(ctx context.Context, entity string, id uint, dest interface{}) (int64, bool) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.fail(entity, "读取缓存代数失败", err)
		return noGeneration, false
	}

	var data []byte
	err = c.call(func() (err error) {
		data, err = c.client.Get(ctx, entryKey(gen, entity, id)).Bytes()
		return err
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.RecordCacheResult(entity, metrics.CacheMiss)
			return gen, false
		}
		c.fail(entity, "读取缓存失败", err)
		return gen, false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.fail(entity, "缓存数据无法解析", err)
		return gen, false
	}

	metrics.RecordCacheResult(entity, metrics.CacheHit)
	return gen, true
}

// set 在gen代数下写入快照(写失败只记录日志)
func (c *Cache) set(ctx context.Context, gen int64, entity string, id uint, value interface{}) {
	if gen == noGeneration {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.fail(entity, "缓存数据序列化失败", err)
		return
	}

	err = c.call(func() error {
		return c.client.Set(ctx, entryKey(gen, entity, id), data, c.ttl).Err()
	})
	if err != nil {
		c.fail(entity, "写入缓存失败", err)
	}
}

// Invalidate 换代,使所有已缓存的快照失效
func (c *Cache) Invalidate(ctx context.Context) {
	err := c.call(func() error {
		return c.client.Incr(ctx, generationKey).Err()
	})
	if err != nil {
		c.log.Warn("缓存换代失败", zap.Error(err))
	}
}

// fail 记录缓存错误;熔断期间的跳过只记debug,避免每个请求都刷告警
func (c *Cache) fail(entity, msg string, err error) {
	metrics.RecordCacheResult(entity, metrics.CacheError)
	if errors.Is(err, circuitbreaker.ErrOpen) {
		c.log.Debug(msg, zap.String("entity", entity), zap.Error(err))
		return
	}
	c.log.Warn(msg, zap.String("entity", entity), zap.Error(err))
}
