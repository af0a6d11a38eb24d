package xksuid

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"

	"github.com/google/uuid"
)

// PayloadSource 提供 ID 的 payload 字节，每次调用必须返回新的 16 字节切片。
//
// [NewGenerator] 会在构建时调用一次进行校验。
// 并发安全性由实现方保证：生成器本身不加锁，多个 goroutine 共用生成器时
// 会并发调用同一个 PayloadSource。
type PayloadSource func() []byte

// CryptoSource 返回基于 crypto/rand 的 payload 来源。并发安全，生成器默认使用。
func CryptoSource() PayloadSource {
	return func() []byte {
		p := make([]byte, PayloadBytes)
		// Go 1.24 起 crypto/rand.Read 不会返回错误
		_, _ = rand.Read(p)
		return p
	}
}

// UUIDSource 返回以随机 UUID（v4）作为 payload 的来源。并发安全。
//
// UUID v4 固定了 6 个版本/变体位，payload 实际熵为 122 bit。
// 适用于需要 payload 本身也是合法 UUID 的场景（例如与只识别 UUID 的下游系统关联）。
func UUIDSource() PayloadSource {
	return func() []byte {
		u := uuid.New()
		return u[:]
	}
}

// RandSource 返回基于 math/rand/v2 的 payload 来源，用于可复现的测试数据。
//
// *rand.Rand 不是并发安全的，返回的来源也不是。不要用于生产环境。
func RandSource(r *mathrand.Rand) PayloadSource {
	return func() []byte {
		p := make([]byte, PayloadBytes)
		binary.BigEndian.PutUint64(p[:8], r.Uint64())
		binary.BigEndian.PutUint64(p[8:], r.Uint64())
		return p
	}
}

// FixedSource 返回始终提供 payload 副本的来源，用于测试。
// payload 长度不是 16 时，NewGenerator 会拒绝该来源。
func FixedSource(payload []byte) PayloadSource {
	p := bytes.Clone(payload)
	return func() []byte {
		return bytes.Clone(p)
	}
}
