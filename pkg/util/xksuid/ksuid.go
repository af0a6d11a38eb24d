package xksuid

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/omeyang/xksuid/pkg/util/xbase62"
)

// =============================================================================
// 错误定义
// =============================================================================

var (
	// ErrInvalidArgument 输入违反 ID 的长度、字母表或取值范围约束。
	// 错误信息会指明被违反的约束（期望长度、非法字符、payload 来源字节数等）。
	ErrInvalidArgument = errors.New("xksuid: invalid argument")

	// ErrAlreadyInitialized 全局生成器已初始化。
	// 第二次调用 Init 时返回此错误。如需多个生成器，请使用 NewGenerator。
	ErrAlreadyInitialized = errors.New("xksuid: generator already initialized")

	// ErrNilGenerator 生成器实例为 nil 或未通过 NewGenerator 创建。
	ErrNilGenerator = errors.New("xksuid: nil generator (use NewGenerator to create)")
)

// =============================================================================
// 布局常量
// =============================================================================

const (
	// Epoch 时间戳零点（Unix 秒）。此变体直接使用 Unix epoch。
	Epoch = 0

	// TimestampBytes 时间戳字段字节数（40 bit）。
	TimestampBytes = 5

	// PayloadBytes payload 字段字节数。
	PayloadBytes = 16

	// TotalBytes ID 二进制形式的总字节数。
	TotalBytes = TimestampBytes + PayloadBytes

	// StringLength 规范字符串长度。21 字节全 0xFF 时 base62 编码恰好 29 位。
	StringLength = 29

	// MaxTimestamp 5 字节可表示的最大时间戳。
	MaxTimestamp = 1<<(8*TimestampBytes) - 1

	// minBytes 从字节构建时允许的最短输入。
	// 上游大整数序列化可能丢掉一个前导零字节。
	minBytes = TotalBytes - 1

	// timeLayout 时间分量的展示格式，例如 "2017-10-10 04:00:47 +0000 UTC"。
	timeLayout = "2006-01-02 15:04:05 -0700 MST"
)

// =============================================================================
// ID
// =============================================================================

// ID 是 21 字节的 K-Sortable 唯一标识：5 字节大端时间戳 + 16 字节 payload。
//
// ID 是值类型，构建后不可变，可安全地在多个 goroutine 间共享。
// 可直接用 == 比较，也可作为 map 的键。
type ID [TotalBytes]byte

// Nil 零值 ID（时间戳为 0，payload 全零）。
var Nil ID

// FromBytes 从二进制形式构建 ID。
//
// 长度必须为 20 或 21 字节；20 字节时视为省略了一个前导零字节，在左侧补零。
// 其他长度返回 [ErrInvalidArgument]。
func FromBytes(b []byte) (ID, error) {
	if len(b) < minBytes || len(b) > TotalBytes {
		return Nil, fmt.Errorf("%w: ksuid is not expected length of %d (%d-%d) bytes, got %d",
			ErrInvalidArgument, TotalBytes, minBytes, TotalBytes, len(b))
	}
	var id ID
	copy(id[TotalBytes-len(b):], b)
	return id, nil
}

// Parse 从规范字符串构建 ID。
//
// 先做 base62 解码，再按 [FromBytes] 的规则校验长度。
// 解码丢掉的前导零字节由这里补回：输入至少 [StringLength] 位时，
// 不足 20 字节的值左侧补零到 21 字节，因此时间戳很小的 ID 和 [Nil] 也能往返。
// 超过 21 字节的值总是被拒绝。
// 返回的错误同时匹配 [ErrInvalidArgument]，解码失败时还匹配 [xbase62.ErrInvalidArgument]。
func Parse(s string) (ID, error) {
	b, err := xbase62.Decode(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if len(b) < minBytes && len(s) >= StringLength {
		var id ID
		copy(id[TotalBytes-len(b):], b)
		return id, nil
	}
	return FromBytes(b)
}

// MustParse 与 Parse 相同，失败时 panic。适用于常量和测试数据。
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}

// FromParts 由时间戳和 payload 构建 ID。
//
// payload 必须恰好 16 字节，timestamp 不得超过 [MaxTimestamp]，否则返回 [ErrInvalidArgument]。
// payload 会被复制，调用方之后修改原切片不影响 ID。
func FromParts(timestamp uint64, payload []byte) (ID, error) {
	if len(payload) != PayloadBytes {
		return Nil, fmt.Errorf("%w: payload is not expected length of %d bytes, got %d",
			ErrInvalidArgument, PayloadBytes, len(payload))
	}
	if timestamp > MaxTimestamp {
		return Nil, fmt.Errorf("%w: timestamp %d exceeds %d-byte range (max %d)",
			ErrInvalidArgument, timestamp, TimestampBytes, uint64(MaxTimestamp))
	}

	// 时间戳写入 8 字节大端缓冲区，取低 5 字节
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], timestamp)

	var id ID
	copy(id[:TimestampBytes], ts[len(ts)-TimestampBytes:])
	copy(id[TimestampBytes:], payload)
	return id, nil
}

// Bytes 返回 21 字节二进制形式的副本。
func (id ID) Bytes() []byte {
	return bytes.Clone(id[:])
}

// String 返回 29 位规范字符串，长度不足时左侧补 '0'。
func (id ID) String() string {
	return xbase62.EncodeWithPadding(id[:], StringLength)
}

// Timestamp 返回时间戳分量（自 [Epoch] 起的秒数）。
func (id ID) Timestamp() uint64 {
	var ts [8]byte
	copy(ts[len(ts)-TimestampBytes:], id[:TimestampBytes])
	return binary.BigEndian.Uint64(ts[:])
}

// Time 返回时间戳对应的 UTC 时刻。
func (id ID) Time() time.Time {
	return time.Unix(int64(id.Timestamp())+Epoch, 0).UTC()
}

// FormatTime 按 "2006-01-02 15:04:05 -0700 MST" 格式输出 loc 时区下的时间分量。
// loc 为 nil 时使用 time.Local。
func (id ID) FormatTime(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return id.Time().In(loc).Format(timeLayout)
}

// Payload 返回 16 字节 payload 的副本。
func (id ID) Payload() []byte {
	return bytes.Clone(id[TimestampBytes:])
}

// PayloadHex 返回 payload 的大写十六进制形式（32 字符）。
func (id ID) PayloadHex() string {
	return upperHex(id[TimestampBytes:])
}

// Raw 返回完整 21 字节的大写十六进制形式（42 字符），用于诊断输出。
func (id ID) Raw() string {
	return upperHex(id[:])
}

// Inspect 返回多行诊断信息，时间分量按 loc 时区展示（nil 为 time.Local）。
//
//	REPRESENTATION:
//
//	  String: 000ujtsYcgvSTl8PAuAdqWYSMnLOv
//	     Raw: 000669F7EFB5A1CD34B5F99D1154FB6853345C9735
//
//	COMPONENTS:
//
//	       Time: 1973-05-30 11:07:27 +0000 UTC
//	  Timestamp: 107608047
//	    Payload: B5A1CD34B5F99D1154FB6853345C9735
func (id ID) Inspect(loc *time.Location) string {
	return fmt.Sprintf("REPRESENTATION:\n\n  String: %s\n     Raw: %s\n\nCOMPONENTS:\n\n       Time: %s\n  Timestamp: %d\n    Payload: %s\n",
		id.String(), id.Raw(), id.FormatTime(loc), id.Timestamp(), id.PayloadHex())
}

// IsNil 报告 id 是否为零值。
func (id ID) IsNil() bool {
	return id == Nil
}

// Compare 先按时间戳升序，再按 payload 无符号字典序比较。
// 返回 -1、0 或 +1。
func (id ID) Compare(other ID) int {
	if c := cmp.Compare(id.Timestamp(), other.Timestamp()); c != 0 {
		return c
	}
	return bytes.Compare(id[TimestampBytes:], other[TimestampBytes:])
}

// Less 报告 id 是否排在 other 之前。
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// Hash 返回二进制形式的 xxhash64 值，可用于分片和一致性路由。
func (id ID) Hash() uint64 {
	return xxhash.Sum64(id[:])
}

// Shard 将 id 映射到 [0, n) 区间。n <= 0 时返回 0。
func (id ID) Shard(n int) int {
	if n <= 0 {
		return 0
	}
	return int(id.Hash() % uint64(n))
}

// Compare 是 [ID.Compare] 的函数形式，便于 slices.SortFunc 等使用。
func Compare(a, b ID) int {
	return a.Compare(b)
}

// Sort 将 ids 原地按 [Compare] 排序。
func Sort(ids []ID) {
	slices.SortFunc(ids, Compare)
}

// IsSorted 报告 ids 是否已按 [Compare] 有序。
func IsSorted(ids []ID) bool {
	return slices.IsSortedFunc(ids, Compare)
}

func upperHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}
