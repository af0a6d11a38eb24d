package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/omeyang/xksuid/pkg/observability/xlog"
	"github.com/omeyang/xksuid/pkg/util/xksuid"
	"github.com/urfave/cli/v3"
)

// usageError 参数错误，退出码 2，stderr 附带用法说明。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// env 一次运行的外部依赖。clock 和 source 为 nil 时使用系统时钟和配置的来源。
type env struct {
	stdout io.Writer
	stderr io.Writer
	clock  func() time.Time
	source xksuid.PayloadSource
}

func createCommands(e *env) []*cli.Command {
	return []*cli.Command{
		{
			Name:         "generate",
			Aliases:      []string{"gen"},
			Usage:        "生成 KSUID（等同于不带参数运行）",
			OnUsageError: onUsageError,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				if cmd.Args().Len() > 0 {
					return &usageError{msg: "generate 不接受位置参数"}
				}
				return e.generate(ctx, cmd)
			},
		},
		{
			Name:         "inspect",
			Aliases:      []string{"parse"},
			Usage:        "解析并输出 KSUID（等同于带参数运行）",
			ArgsUsage:    "<ksuid>...",
			OnUsageError: onUsageError,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				args := cmd.Args().Slice()
				if len(args) == 0 {
					return &usageError{msg: "inspect 需要至少一个 KSUID"}
				}
				return e.inspect(ctx, cmd, args)
			},
		},
	}
}

// auto 没有位置参数时生成，否则解析。
func (e *env) auto(ctx context.Context, cmd *cli.Command) error {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return e.inspect(ctx, cmd, args)
	}
	return e.generate(ctx, cmd)
}

func (e *env) generate(ctx context.Context, cmd *cli.Command) error {
	r, logger, cleanup, err := e.prepare(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	opts := []xksuid.Option{xksuid.WithPayloadSource(r.payloadSource(e.source))}
	if e.clock != nil {
		opts = append(opts, xksuid.WithClock(e.clock))
	}
	gen, err := xksuid.NewGenerator(opts...)
	if err != nil {
		return fmt.Errorf("创建生成器: %w", err)
	}

	// 逐个生成并立即输出，不按 Count 预分配
	p := r.printer()
	for i := range r.Count {
		if err := ctx.Err(); err != nil {
			return err
		}
		id, err := gen.New()
		if err != nil {
			return fmt.Errorf("生成 KSUID: %w", err)
		}
		if i == 0 {
			logger.DebugContext(ctx, "generated",
				slog.Int("count", r.Count),
				slog.String("source", r.Source),
				slog.Any("first", id))
		}
		if err := r.print(e.stdout, p, id); err != nil {
			return err
		}
	}
	return nil
}

func (e *env) inspect(ctx context.Context, cmd *cli.Command, args []string) error {
	r, logger, cleanup, err := e.prepare(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	// 全部解析成功后才输出
	ids := make([]xksuid.ID, 0, len(args))
	for _, arg := range args {
		id, err := xksuid.Parse(arg)
		if err != nil {
			logger.DebugContext(ctx, "parse failed", slog.String("input", arg), slog.Any("error", err))
			return &usageError{msg: fmt.Sprintf("无法解析 %q: %v", arg, err)}
		}
		ids = append(ids, id)
	}
	logger.DebugContext(ctx, "parsed", slog.Int("count", len(ids)))
	return r.printAll(e.stdout, ids)
}

// prepare 解析配置并构建日志。
func (e *env) prepare(cmd *cli.Command) (*resolved, *slog.Logger, func() error, error) {
	r, err := resolveSettings(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	b := xlog.New().
		SetOutput(e.stderr).
		SetLevelString(r.Log.Level).
		SetFormat(r.Log.Format).
		With(slog.String("component", "ksuid"))
	if r.Log.File != "" {
		b.SetRotation(r.Log.File)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, nil, &usageError{msg: fmt.Sprintf("日志配置错误: %v", err)}
	}
	return r, logger, cleanup, nil
}

// onUsageError 把 flag 解析错误（未知 flag、数值格式错误等）转为 *usageError。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

const usageText = `用法: ksuid [选项] [ksuid...]
       ksuid generate [选项]
       ksuid inspect [选项] <ksuid>...

选项:
  -f, --format string   输出格式: string, inspect, time, timestamp, payload, raw, template (默认 "string")
  -n, --count int       不带参数运行时生成的数量 (默认 1)
  -t, --template string 输出模板，可用字段 .String .Raw .Time .Timestamp .Payload .Hash
  -v, --verbose         每行前输出 "<id>: "
      --tz string       time/inspect/template 使用的时区 (默认 "Local")
      --source string   payload 来源: crypto, uuid (默认 "crypto")
  -c, --config string   YAML/JSON 配置文件
      --log-level       日志级别: debug, info, warn, error (默认 "warn")
      --log-format      日志格式: text, json (默认 "text")
      --log-file        日志文件（按大小轮转），默认输出到 stderr
`

func printUsage(w io.Writer) {
	_, _ = io.WriteString(w, usageText)
}
