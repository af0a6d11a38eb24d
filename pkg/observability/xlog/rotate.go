package xlog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 轮转默认值。命令行工具的日志量小，取值比服务端保守。
const (
	DefaultMaxSizeMB  = 50
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 14

	maxSizeMB  = 10240
	maxBackups = 1024
	maxAgeDays = 3650
)

type rotation struct {
	maxSizeMB  int
	maxBackups int
	maxAgeDays int
	compress   bool
}

// RotateOption 日志轮转选项
type RotateOption func(*rotation)

// WithMaxSize 单个文件上限（MB），须在 1~10240 之间。
func WithMaxSize(mb int) RotateOption {
	return func(r *rotation) { r.maxSizeMB = mb }
}

// WithMaxBackups 保留的备份数，0 表示不限。
func WithMaxBackups(n int) RotateOption {
	return func(r *rotation) { r.maxBackups = n }
}

// WithMaxAge 备份保留天数，0 表示不按天清理。
func WithMaxAge(days int) RotateOption {
	return func(r *rotation) { r.maxAgeDays = days }
}

// WithCompress 是否 gzip 压缩备份。
func WithCompress(compress bool) RotateOption {
	return func(r *rotation) { r.compress = compress }
}

// newRotator 校验参数、创建父目录并返回 lumberjack 写入器。文件在首次写入时才打开。
func newRotator(filename string, opts ...RotateOption) (*lumberjack.Logger, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	r := rotation{
		maxSizeMB:  DefaultMaxSizeMB,
		maxBackups: DefaultMaxBackups,
		maxAgeDays: DefaultMaxAgeDays,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&r)
		}
	}

	switch {
	case r.maxSizeMB <= 0 || r.maxSizeMB > maxSizeMB:
		return nil, fmt.Errorf("%w: max size %d, want 1~%d", ErrInvalidRotation, r.maxSizeMB, maxSizeMB)
	case r.maxBackups < 0 || r.maxBackups > maxBackups:
		return nil, fmt.Errorf("%w: max backups %d, want 0~%d", ErrInvalidRotation, r.maxBackups, maxBackups)
	case r.maxAgeDays < 0 || r.maxAgeDays > maxAgeDays:
		return nil, fmt.Errorf("%w: max age %d, want 0~%d", ErrInvalidRotation, r.maxAgeDays, maxAgeDays)
	case r.maxBackups == 0 && r.maxAgeDays == 0:
		return nil, fmt.Errorf("%w: max backups and max age cannot both be 0", ErrInvalidRotation)
	}

	path := filepath.Clean(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("xlog: create log dir: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    r.maxSizeMB,
		MaxBackups: r.maxBackups,
		MaxAge:     r.maxAgeDays,
		Compress:   r.compress,
	}, nil
}
