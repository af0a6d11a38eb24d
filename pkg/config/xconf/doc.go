// Package xconf 基于 koanf 的最小配置加载器。
//
// 负责把 YAML/JSON 文件加载为 koanf 实例并解码到结构体（标签 koanf，分隔符 "."）。
// 不做字段校验、默认值注入或环境变量覆盖：这些由调用方决定
// （例如 ksuid 命令行让显式传入的 flag 覆盖配置文件中的值）。
//
// # 支持的格式
//
//   - YAML：.yaml, .yml
//   - JSON：.json
//
// # 用法
//
//	cfg, err := xconf.New("ksuid.yaml")
//	if err != nil {
//	    return err
//	}
//	var s Settings
//	if err := cfg.Unmarshal("", &s); err != nil {
//	    return err
//	}
package xconf
