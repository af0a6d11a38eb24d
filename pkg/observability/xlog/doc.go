// Package xlog 基于 log/slog 的日志构建器。
//
// # 创建 Logger
//
//	logger, cleanup, err := xlog.New().
//	    SetLevelString("debug").
//	    SetFormat("json").
//	    SetRotation("/var/log/ksuid.log", xlog.WithMaxSize(10)).
//	    Build()
//	if err != nil {
//	    return err
//	}
//	defer cleanup()
//
// Builder 采用 first-error-wins：遇到第一个配置错误后，Build 返回该错误。
// Builder 为一次性使用，第二次 Build 返回 [ErrBuilderUsed]。
//
// # 轮转
//
// [Builder.SetRotation] 基于 lumberjack 按文件大小轮转，可配置单文件上限、
// 备份数、保留天数和压缩。备份数和保留天数不能同时为 0，避免无限增长。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// [ParseLevel] 从字符串解析；Level 实现 encoding.TextMarshaler/TextUnmarshaler，
// 可直接从配置文件解码。
package xlog
