// Package xksuid 提供 40 bit 时间戳的 KSUID（K-Sortable Unique Identifier）。
//
// # ID 结构
//
// 二进制形式固定 21 字节，大端序，无填充位：
//
//	byte 0-4  : 时间戳，40 bit 无符号整数，自 Unix epoch 起的秒数
//	byte 5-20 : payload，16 字节随机数
//
// 规范字符串是这 21 字节的 base62 编码（字母表 0-9A-Za-z），左侧补 '0' 到 29 位，
// 字典序与时间顺序一致。十六进制形式（42 个大写字符）仅用于诊断输出。
//
// # 快速开始
//
//	// 全局生成器（crypto/rand + 系统时钟）
//	id, err := xksuid.New()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 例如 "0Dz40rGb7Ea16c6dXiXv3p5w2yfq"
//
//	// 解析
//	id, err = xksuid.Parse("000ujtsYcgvSTl8PAuAdqWYSMnLOv")
//
// # 构建方式
//
// 三种互斥的构建入口，各自校验自己的约束，返回同一个不可变值类型 [ID]：
//
//   - [FromBytes]：20-21 字节二进制（20 字节视为省略了前导零字节）
//   - [Parse]：规范字符串（29 位，包括 [Nil] 在内的任意合法 ID 都能往返）
//   - [FromParts]：时间戳 + 16 字节 payload
//
// 所有违反约束的输入都返回 [ErrInvalidArgument]，可用 errors.Is 判断。
//
// # 自定义生成器
//
//	gen, err := xksuid.NewGenerator(
//	    xksuid.WithPayloadSource(xksuid.UUIDSource()),
//	    xksuid.WithClock(func() time.Time { return fixed }),
//	    xksuid.WithMeterProvider(otel.GetMeterProvider()),
//	)
//
// payload 来源在 NewGenerator 中被调用一次并校验长度，配置错误在构建时暴露。
//
// # 排序
//
// [ID.Compare] 先比较时间戳，再按无符号字典序比较 payload；与 == 一致。
// 同一生成器在严格递增的秒级时间戳下生成的 ID 严格递增，
// 同一秒内的顺序由 payload 决定。
//
// # 序列化
//
// ID 实现了 encoding.TextMarshaler / BinaryMarshaler（因此支持 JSON）、
// database/sql 的 Valuer / Scanner、BSON 的 ValueMarshaler / ValueUnmarshaler，
// 以及 slog.LogValuer。
//
// # 线程安全
//
// ID 是值类型，所有访问器返回副本。Generator 构建后不可变，不持有锁；
// 并发调用时 payload 来源的线程安全由来源自身保证（见 [PayloadSource]）。
package xksuid
