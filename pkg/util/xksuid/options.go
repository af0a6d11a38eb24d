package xksuid

import (
	"time"

	"go.opentelemetry.io/otel/metric"
)

// =============================================================================
// 配置
// =============================================================================

// options 内部配置结构
type options struct {
	source        PayloadSource
	clock         func() time.Time
	meterProvider metric.MeterProvider
}

// Option 配置选项函数
type Option func(*options)

func defaultOptions() *options {
	return &options{
		source: CryptoSource(),
		clock:  time.Now,
	}
}

// WithPayloadSource 设置 payload 来源。
//
// 默认使用 [CryptoSource]。来源在 NewGenerator 中被调用一次，
// 返回长度不是 16 或传入 nil 时 NewGenerator 返回 [ErrInvalidArgument]（fail-fast）。
func WithPayloadSource(src PayloadSource) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithClock 设置当前时间来源，默认 time.Now。
//
// 测试中可注入固定时钟。传入 nil 时 NewGenerator 返回 [ErrInvalidArgument]。
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithMeterProvider 设置 OpenTelemetry MeterProvider，用于记录生成次数和失败次数。
//
// 不调用或传入 nil 时不收集指标。
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		o.meterProvider = mp
	}
}
