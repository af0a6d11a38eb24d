package xksuid

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// 指标名称常量
const (
	// metricNameGeneratedTotal 成功生成的 ID 数
	metricNameGeneratedTotal = "xksuid.generated.total"
	// metricNameErrorsTotal 生成失败次数
	metricNameErrorsTotal = "xksuid.generate.errors.total"
)

// 失败原因，作为 reason 属性值
const (
	reasonTimestampRange = "timestamp_out_of_range"
	reasonPayloadLength  = "payload_length"
)

// metrics 生成器指标收集器。nil 表示不收集。
type metrics struct {
	generatedTotal metric.Int64Counter
	errorsTotal    metric.Int64Counter
}

// newMetrics 创建指标收集器。meterProvider 为 nil 时返回 nil。
func newMetrics(meterProvider metric.MeterProvider) (*metrics, error) {
	if meterProvider == nil {
		return nil, nil
	}

	meter := meterProvider.Meter("xksuid",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	generatedTotal, err := meter.Int64Counter(
		metricNameGeneratedTotal,
		metric.WithDescription("成功生成的 KSUID 数"),
		metric.WithUnit("{id}"),
	)
	if err != nil {
		return nil, err
	}

	errorsTotal, err := meter.Int64Counter(
		metricNameErrorsTotal,
		metric.WithDescription("KSUID 生成失败次数"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{
		generatedTotal: generatedTotal,
		errorsTotal:    errorsTotal,
	}, nil
}

func (m *metrics) recordGenerated() {
	if m == nil {
		return
	}
	m.generatedTotal.Add(context.Background(), 1)
}

func (m *metrics) recordError(reason string) {
	if m == nil {
		return
	}
	m.errorsTotal.Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("reason", reason)))
}
