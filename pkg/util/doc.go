// Package util 提供标识符相关的工具子包。
//
// 子包列表：
//   - xbase62: 任意长度字节串与 base62（0-9A-Za-z）文本之间的编解码，支持左侧补零
//   - xksuid: 40 bit 时间戳的 KSUID，构建、解析、排序、生成器与序列化
//
// 设计原则：
//   - 值类型、构建后不可变，可在 goroutine 间安全共享
//   - 输入违反约束时返回可用 errors.Is 判断的哨兵错误，不 panic（Must* 系列除外）
package util
