package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/template"
	"time"

	"github.com/omeyang/xksuid/pkg/config/xconf"
	"github.com/omeyang/xksuid/pkg/util/xksuid"
	"github.com/urfave/cli/v3"
)

// 输出格式
const (
	formatString    = "string"
	formatInspect   = "inspect"
	formatTime      = "time"
	formatTimestamp = "timestamp"
	formatPayload   = "payload"
	formatRaw       = "raw"
	formatTemplate  = "template"
)

var formats = []string{
	formatString, formatInspect, formatTime, formatTimestamp,
	formatPayload, formatRaw, formatTemplate,
}

// payload 来源
const (
	sourceCrypto = "crypto"
	sourceUUID   = "uuid"
)

// settings 一次运行的最终配置：默认值 < 配置文件 < 环境变量/命令行。
type settings struct {
	Format   string `koanf:"format"`
	Count    int    `koanf:"count"`
	Template string `koanf:"template"`
	Verbose  bool   `koanf:"verbose"`
	Timezone string `koanf:"timezone"`
	Source   string `koanf:"source"`
	Log      struct {
		Level  string `koanf:"level"`
		Format string `koanf:"format"`
		File   string `koanf:"file"`
	} `koanf:"log"`
}

func defaultSettings() settings {
	s := settings{
		Format:   formatString,
		Count:    1,
		Timezone: "Local",
		Source:   sourceCrypto,
	}
	s.Log.Level = "warn"
	s.Log.Format = "text"
	return s
}

// resolved 校验后的运行参数
type resolved struct {
	settings
	loc  *time.Location
	tmpl *template.Template
}

// resolveSettings 合并配置文件和命令行，校验失败返回 *usageError。
func resolveSettings(cmd *cli.Command) (*resolved, error) {
	s := defaultSettings()

	if path := cmd.String("config"); path != "" {
		cfg, err := xconf.New(path)
		if err != nil {
			return nil, &usageError{msg: fmt.Sprintf("加载配置文件失败: %v", err)}
		}
		if err := cfg.Unmarshal("", &s); err != nil {
			return nil, &usageError{msg: fmt.Sprintf("解析配置文件失败: %v", err)}
		}
	}

	overrideString(cmd, "format", &s.Format)
	overrideString(cmd, "template", &s.Template)
	overrideString(cmd, "tz", &s.Timezone)
	overrideString(cmd, "source", &s.Source)
	overrideString(cmd, "log-level", &s.Log.Level)
	overrideString(cmd, "log-format", &s.Log.Format)
	overrideString(cmd, "log-file", &s.Log.File)
	if cmd.IsSet("count") {
		s.Count = cmd.Int("count")
	}
	if cmd.IsSet("verbose") {
		s.Verbose = cmd.Bool("verbose")
	}

	return s.validate()
}

func overrideString(cmd *cli.Command, name string, dst *string) {
	if cmd.IsSet(name) {
		*dst = cmd.String(name)
	}
}

func (s settings) validate() (*resolved, error) {
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	if !slices.Contains(formats, s.Format) {
		return nil, &usageError{msg: fmt.Sprintf("未知的输出格式: %s", s.Format)}
	}
	if s.Count < 0 {
		return nil, &usageError{msg: fmt.Sprintf("生成数量不能为负数: %d", s.Count)}
	}
	if s.Source != sourceCrypto && s.Source != sourceUUID {
		return nil, &usageError{msg: fmt.Sprintf("未知的 payload 来源: %s", s.Source)}
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, &usageError{msg: fmt.Sprintf("无效的时区 %q: %v", s.Timezone, err)}
	}

	r := &resolved{settings: s, loc: loc}
	if s.Format == formatTemplate {
		tmpl, err := template.New("ksuid").Option("missingkey=error").Parse(s.Template)
		if err != nil {
			return nil, &usageError{msg: fmt.Sprintf("无效的模板: %v", err)}
		}
		// 引用不存在的字段只在执行时报错，先用空数据试执行一次
		if err := tmpl.Execute(io.Discard, templateData{}); err != nil {
			return nil, &usageError{msg: fmt.Sprintf("无效的模板: %v", err)}
		}
		r.tmpl = tmpl
	}
	return r, nil
}

// payloadSource 按名称返回 payload 来源，测试注入的来源优先。
func (r *resolved) payloadSource(injected xksuid.PayloadSource) xksuid.PayloadSource {
	if injected != nil {
		return injected
	}
	if r.Source == sourceUUID {
		return xksuid.UUIDSource()
	}
	return xksuid.CryptoSource()
}
