package xksuid

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// =============================================================================
// Generator - 实例化的 ID 生成器
// =============================================================================

// Generator KSUID 生成器。
//
// 支持两种使用方式：
//   - 实例化：通过 NewGenerator 创建独立实例，适用于依赖注入和测试隔离
//   - 全局函数：通过包级别函数（New/NewString 等）使用默认全局实例
//
// Generator 构建后不再修改任何字段，每次生成只读取时钟并调用 payload 来源，
// 因此可被多个 goroutine 并发使用（前提是 payload 来源本身并发安全）。
type Generator struct {
	source  PayloadSource
	now     func() time.Time
	metrics *metrics
}

// NewGenerator 创建新的 KSUID 生成器。
//
// 不传入选项时使用 [CryptoSource] 和 time.Now。
// payload 来源会在此处被调用一次：返回长度不是 16 时立即返回 [ErrInvalidArgument]，
// 而不是推迟到生成时才失败。
func NewGenerator(opts ...Option) (*Generator, error) {
	cfg := defaultOptions()
	// nil Option 静默跳过，便于条件式构建 Option 列表
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.source == nil {
		return nil, fmt.Errorf("%w: payload source must not be nil", ErrInvalidArgument)
	}
	if cfg.clock == nil {
		return nil, fmt.Errorf("%w: clock must not be nil", ErrInvalidArgument)
	}
	if n := len(cfg.source()); n != PayloadBytes {
		return nil, fmt.Errorf("%w: payload source must supply byte slices of length %d, got %d",
			ErrInvalidArgument, PayloadBytes, n)
	}

	m, err := newMetrics(cfg.meterProvider)
	if err != nil {
		return nil, fmt.Errorf("xksuid: create metrics: %w", err)
	}

	return &Generator{
		source:  cfg.source,
		now:     cfg.clock,
		metrics: m,
	}, nil
}

// validate 校验生成器实例是否可用，防止零值 Generator 导致 nil pointer panic。
func (g *Generator) validate() error {
	if g == nil || g.source == nil || g.now == nil {
		return ErrNilGenerator
	}
	return nil
}

// New 以当前时钟时间生成新的 ID。
func (g *Generator) New() (ID, error) {
	if err := g.validate(); err != nil {
		return Nil, err
	}
	return g.NewAt(g.now())
}

// NewAt 以指定时刻生成新的 ID，t 截断到整秒。
//
// t 早于 [Epoch] 或超出 40 bit 时间戳范围时返回 [ErrInvalidArgument]。
// payload 来源返回的长度不是 16 时同样返回 [ErrInvalidArgument]。
func (g *Generator) NewAt(t time.Time) (ID, error) {
	if err := g.validate(); err != nil {
		return Nil, err
	}

	sec := t.Unix() - Epoch
	if sec < 0 || uint64(sec) > MaxTimestamp {
		g.metrics.recordError(reasonTimestampRange)
		return Nil, fmt.Errorf("%w: time %s is outside the %d-byte timestamp range",
			ErrInvalidArgument, t.UTC().Format(time.RFC3339), TimestampBytes)
	}

	id, err := FromParts(uint64(sec), g.source())
	if err != nil {
		g.metrics.recordError(reasonPayloadLength)
		return Nil, err
	}
	g.metrics.recordGenerated()
	return id, nil
}

// NewString 生成新的 ID 并返回其规范字符串。
func (g *Generator) NewString() (string, error) {
	id, err := g.New()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// MustNew 与 New 相同，失败时 panic。
func (g *Generator) MustNew() ID {
	id, err := g.New()
	if err != nil {
		panic(err)
	}
	return id
}

// =============================================================================
// 全局单例
// =============================================================================

var (
	defaultGen atomic.Pointer[Generator]
	initMu     sync.Mutex
)

// Init 以指定选项初始化全局生成器。
//
// 不调用 Init 时，首次生成会使用默认配置（CryptoSource、time.Now）自动初始化。
// Init 只能成功一次，之后（或自动初始化之后）再调用返回 [ErrAlreadyInitialized]。
// 失败时不会留下半初始化状态，修正参数后可再次调用。
func Init(opts ...Option) error {
	initMu.Lock()
	defer initMu.Unlock()
	if defaultGen.Load() != nil {
		return ErrAlreadyInitialized
	}
	gen, err := NewGenerator(opts...)
	if err != nil {
		return err
	}
	defaultGen.Store(gen)
	return nil
}

// Default 返回全局生成器，必要时以默认配置初始化。
//
// 使用 double-checked locking：快速路径仅需一次原子 Load。
func Default() *Generator {
	if gen := defaultGen.Load(); gen != nil {
		return gen
	}
	initMu.Lock()
	defer initMu.Unlock()
	if gen := defaultGen.Load(); gen != nil {
		return gen
	}
	gen, err := NewGenerator()
	if err != nil {
		// 默认配置只依赖 crypto/rand 和 time.Now，不可能失败
		panic(err)
	}
	defaultGen.Store(gen)
	return gen
}

// =============================================================================
// 全局便捷函数
// =============================================================================

// New 使用全局生成器生成新的 ID。
func New() (ID, error) {
	return Default().New()
}

// NewAt 使用全局生成器以指定时刻生成新的 ID。
func NewAt(t time.Time) (ID, error) {
	return Default().NewAt(t)
}

// NewString 使用全局生成器生成新的 ID 并返回规范字符串。
func NewString() (string, error) {
	return Default().NewString()
}

// MustNew 使用全局生成器生成新的 ID，失败时 panic。
func MustNew() ID {
	return Default().MustNew()
}

// MustNewString 使用全局生成器生成新的 ID 字符串，失败时 panic。
func MustNewString() string {
	return MustNew().String()
}
