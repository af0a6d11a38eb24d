// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xlog: 基于 log/slog 的日志构建器，支持 text/json 格式和 lumberjack 文件轮转
//
// 指标由各业务包通过 OpenTelemetry metric API 自行上报（例如 xksuid 的生成计数），
// 调用方注入 MeterProvider，未注入时不收集。
package observability
