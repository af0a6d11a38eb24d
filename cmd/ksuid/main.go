// ksuid 生成和解析 40 bit 时间戳的 KSUID。
//
// 用法:
//
//	ksuid [选项] [ksuid...]
//	ksuid generate [选项]
//	ksuid inspect [选项] <ksuid>...
//
// 不带位置参数时生成 -n 个新 ID；带参数时逐个解析并按 -f 指定的格式输出。
//
// 选项:
//
//	-f, --format    string, inspect, time, timestamp, payload, raw, template (默认 string，环境变量 KSUID_FORMAT)
//	-n, --count     生成数量 (默认 1)
//	-t, --template  text/template 模板，字段 .String .Raw .Time .Timestamp .Payload .Hash
//	                （.Hash 为 xxhash64，可用于分片）
//	-v, --verbose   每行前输出 "<id>: "
//	    --tz        时区名称 (默认 Local，环境变量 KSUID_TZ)
//	    --source    payload 来源 crypto 或 uuid
//	-c, --config    YAML/JSON 配置文件，键名同上（log.level/log.format/log.file 对应日志选项）
//
// payload 和 raw 格式直接写出二进制字节，不追加换行。
//
// 优先级: 命令行/环境变量 > 配置文件 > 默认值。
//
// 退出码:
//
//	0: 成功
//	1: 运行时错误（写输出失败等）
//	2: 参数错误（未知格式、无法解析的 KSUID、无效模板、未知 flag 等）
//
// 示例:
//
//	ksuid -n 3
//	ksuid -f inspect 000ujtsYcgvSTl8PAuAdqWYSMnLOv
//	ksuid -f template -t '{{.Time}} {{.Payload}}' 000ujtsYcgvSTl8PAuAdqWYSMnLOv
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息，可通过 -ldflags "-X main.Version=..." 注入。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

func init() {
	// -v 属于 --verbose
	cli.VersionFlag = &cli.BoolFlag{Name: "version", Usage: "打印版本信息"}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, &env{stdout: os.Stdout, stderr: os.Stderr})
	stop()
	os.Exit(code)
}

// createApp 创建 CLI 应用。
func createApp(e *env) *cli.Command {
	return &cli.Command{
		Name:      "ksuid",
		Usage:     "生成和解析 KSUID",
		ArgsUsage: "[ksuid...]",
		Version:   fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Writer:    e.stdout,
		ErrWriter: e.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输出格式: string, inspect, time, timestamp, payload, raw, template",
				Value:   formatString,
				Sources: cli.EnvVars("KSUID_FORMAT"),
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "不带参数运行时生成的数量",
				Value:   1,
			},
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "输出模板，可用字段 .String .Raw .Time .Timestamp .Payload .Hash",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   `每行前输出 "<id>: "`,
			},
			&cli.StringFlag{
				Name:    "tz",
				Usage:   "time/inspect/template 使用的时区",
				Value:   "Local",
				Sources: cli.EnvVars("KSUID_TZ"),
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: "payload 来源: crypto, uuid",
				Value: sourceCrypto,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML/JSON 配置文件",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别: debug, info, warn, error",
				Value: "warn",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "日志格式: text, json",
				Value: "text",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "日志文件（按大小轮转），默认输出到 stderr",
			},
		},
		Commands:     createCommands(e),
		Action:       e.auto,
		OnUsageError: onUsageError,
		// 退出码统一由 run 映射，不让 urfave/cli 调用 os.Exit
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// run 执行命令并返回退出码。
func run(ctx context.Context, args []string, e *env) int {
	return exitCode(createApp(e).Run(ctx, args), e.stderr)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
		printUsage(stderr)
		return 2
	}
	fmt.Fprintf(stderr, "错误: %v\n", err)
	return 1
}
