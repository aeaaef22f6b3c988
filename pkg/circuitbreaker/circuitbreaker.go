// Package circuitbreaker 连续失败熔断器
//
// 状态转换:
//
//	closed    --连续失败达到阈值-->  open
//	open      --OpenTimeout到期-->  half_open(只放行一个探测请求)
//	half_open --探测成功-->         closed
//	half_open --探测失败-->         open
//
// 用于保护可降级的依赖(如Redis缓存):依赖故障期间直接跳过调用,而不是每个请求都等待超时
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// ErrOpen 熔断器打开(或半开且探测中),请求未被执行
var ErrOpen = errors.New("circuit breaker is open")

// 默认参数
const (
	DefaultFailureThreshold = 5
	DefaultOpenTimeout      = 30 * time.Second
)

// Settings 熔断器配置
type Settings struct {
	// Name 用于日志
	Name string
	// FailureThreshold 连续失败多少次后打开,0取默认值
	FailureThreshold uint32
	// OpenTimeout 打开状态持续时间,0取默认值
	OpenTimeout time.Duration
	// OnStateChange 状态变化回调,在锁外调用
	OnStateChange func(name string, from, to State)
}

// Breaker 熔断器,并发安全
type Breaker struct {
	settings Settings
	now      func() time.Time

	mu       sync.Mutex
	state    State
	failures uint32
	openedAt time.Time
	probing  bool
}

// New 创建熔断器,初始为closed
func New(s Settings) *Breaker {
	if s.FailureThreshold == 0 {
		s.FailureThreshold = DefaultFailureThreshold
	}
	if s.OpenTimeout <= 0 {
		s.OpenTimeout = DefaultOpenTimeout
	}
	return &Breaker{settings: s, now: time.Now}
}

// Execute 通过熔断器执行fn
// 熔断时返回ErrOpen且不调用fn;否则返回fn的错误,fn返回非nil即计为一次失败
func (b *Breaker) Execute(fn func() error) error {
	if err := b.allow(); err != nil {
		return err
	}
	err := fn()
	b.record(err == nil)
	return err
}

// State 当前状态(open到期但尚未有请求时仍报告open)
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *Breaker) allow() error {
	b.mu.Lock()
	var from, to State
	changed := false

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.settings.OpenTimeout {
			b.mu.Unlock()
			return ErrOpen
		}
		from, to, changed = b.state, StateHalfOpen, true
		b.state = StateHalfOpen
		b.probing = true
	case StateHalfOpen:
		if b.probing {
			b.mu.Unlock()
			return ErrOpen
		}
		b.probing = true
	}
	b.mu.Unlock()

	if changed {
		b.notify(from, to)
	}
	return nil
}

func (b *Breaker) record(success bool) {
	b.mu.Lock()
	from := b.state
	to := from

	switch b.state {
	case StateClosed:
		if success {
			b.failures = 0
			break
		}
		b.failures++
		if b.failures >= b.settings.FailureThreshold {
			to = StateOpen
		}
	case StateHalfOpen:
		b.probing = false
		if success {
			to = StateClosed
		} else {
			to = StateOpen
		}
	}

	if to != from {
		b.state = to
		b.failures = 0
		if to == StateOpen {
			b.openedAt = b.now()
		}
	}
	b.mu.Unlock()

	if to != from {
		b.notify(from, to)
	}
}

func (b *Breaker) notify(from, to State) {
	if b.settings.OnStateChange != nil {
		b.settings.OnStateChange(b.settings.Name, from, to)
	}
}
