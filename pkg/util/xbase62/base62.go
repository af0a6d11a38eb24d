package xbase62

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidArgument 输入不是合法的 base62 字符串（为空或包含字母表外字符）。
var ErrInvalidArgument = errors.New("xbase62: invalid argument")

// Alphabet base62 字母表，下标即数字取值。
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Base 进制。
const Base = 62

var bigBase = big.NewInt(Base)

// Encode 将 b 按大端序无符号整数编码为 base62 字符串，不做填充。
//
// 空输入返回空字符串；非空但全零的输入返回 "0"。
func Encode(b []byte) string {
	return EncodeWithPadding(b, 0)
}

// EncodeWithPadding 与 Encode 相同，但会在左侧补 '0' 直到长度不小于 minLength。
//
// 自然编码长度已经 >= minLength 时原样返回（只补不截）。
func EncodeWithPadding(b []byte, minLength int) string {
	digits := encodeDigits(b)
	if pad := minLength - len(digits); pad > 0 {
		return strings.Repeat(string(Alphabet[0]), pad) + string(digits)
	}
	return string(digits)
}

// encodeDigits 返回最高位在前的数字序列。
func encodeDigits(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}

	n := new(big.Int).SetBytes(b)
	if n.Sign() == 0 {
		return []byte{Alphabet[0]}
	}

	// 62^k > 256^len(b) 时 k 位足够：每位至少承载 log2(62) ≈ 5.95 bit
	out := make([]byte, 0, len(b)*8/5+1)
	rem := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, bigBase, rem)
		out = append(out, Alphabet[rem.Int64()])
	}

	// 余数按最低位先出，反转为最高位在前
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Decode 将 base62 字符串解码为最短的大端序字节序列。
//
// 空字符串或含字母表外字符（区分大小写）时返回 [ErrInvalidArgument]。
// 数值为零时返回 []byte{0}。
func Decode(s string) ([]byte, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidArgument)
	}

	n := new(big.Int)
	digit := new(big.Int)
	for i := 0; i < len(s); i++ {
		v, ok := digitValue(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: character %q at position %d is not in the base62 alphabet",
				ErrInvalidArgument, s[i], i)
		}
		n.Mul(n, bigBase)
		n.Add(n, digit.SetInt64(int64(v)))
	}

	// big.Int.Bytes 返回不带符号位的最短绝对值表示
	out := n.Bytes()
	if len(out) == 0 {
		return []byte{0}, nil
	}
	return out, nil
}

// IsValid 报告 s 是否为非空且只含字母表字符的字符串。
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := digitValue(s[i]); !ok {
			return false
		}
	}
	return true
}

// digitValue 返回字符对应的数字取值。
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 36, true
	default:
		return 0, false
	}
}
