package xksuid

import (
	"database/sql/driver"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

// 编译期接口检查
var (
	_ slog.LogValuer = ID{}
	_ driver.Valuer  = ID{}
)

// MarshalText 实现 encoding.TextMarshaler，输出规范字符串。
// encoding/json 会据此把 ID 编码为 JSON 字符串。
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler。
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalBinary 实现 encoding.BinaryMarshaler，输出 21 字节二进制形式。
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary 实现 encoding.BinaryUnmarshaler，规则同 [FromBytes]。
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value 实现 driver.Valuer，以规范字符串写入数据库。
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan 实现 sql.Scanner。
//
// 支持 string、规范字符串的 []byte、20/21 字节的二进制 []byte；NULL 扫描为 [Nil]。
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == TotalBytes || len(v) == minBytes {
			return id.UnmarshalBinary(v)
		}
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: cannot scan %T into ksuid", ErrInvalidArgument, src)
	}
}

// MarshalBSONValue 实现 bson.ValueMarshaler，以 BSON 字符串存储规范形式。
func (id ID) MarshalBSONValue() (byte, []byte, error) {
	return byte(bson.TypeString), bsoncore.AppendString(nil, id.String()), nil
}

// UnmarshalBSONValue 实现 bson.ValueUnmarshaler，仅接受 BSON 字符串。
func (id *ID) UnmarshalBSONValue(typ byte, data []byte) error {
	if bson.Type(typ) != bson.TypeString {
		return fmt.Errorf("%w: cannot decode BSON type 0x%02x into ksuid", ErrInvalidArgument, typ)
	}
	s, _, ok := bsoncore.ReadString(data)
	if !ok {
		return fmt.Errorf("%w: malformed BSON string", ErrInvalidArgument)
	}
	return id.UnmarshalText([]byte(s))
}

// LogValue 实现 slog.LogValuer，日志中以分组形式输出 string/timestamp/payload。
func (id ID) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("string", id.String()),
		slog.Uint64("timestamp", id.Timestamp()),
		slog.String("payload", id.PayloadHex()),
	)
}
