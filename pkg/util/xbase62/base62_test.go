package xbase62

import (
	"bytes"
	"encoding/hex"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 固定向量：20 字节原始数据与其 base62 编码
var vectors = []struct {
	raw     string
	encoded string
}{
	{"0E9110E816D1D7403226FA924557DA9B3A0F4642", "24rUCafWbTglyvWlQEuaxKqqiuY"},
	{"0E9110E8C3764DCE8A9C539F5F0D1BE0FCD49E8C", "24rUCfvIRZ0PqLTVlmt7bCVHnCu"},
	{"0E9110E890F44EB7DAF786297B276912EB478BAE", "24rUCeNzQ1KoETEDtwGE1wdazYk"},
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, Base)
	for i := 0; i < len(Alphabet); i++ {
		v, ok := digitValue(Alphabet[i])
		require.True(t, ok, "char %q", Alphabet[i])
		assert.Equal(t, i, v)
	}
}

func TestEncode(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.encoded, func(t *testing.T) {
			assert.Equal(t, tt.encoded, Encode(mustHex(t, tt.raw)))
		})
	}
}

func TestEncodeWithPadding(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.encoded, func(t *testing.T) {
			raw := mustHex(t, tt.raw)
			n := len(tt.encoded)

			assert.Equal(t, "0000"+tt.encoded, EncodeWithPadding(raw, n+4))
			assert.Equal(t, tt.encoded, EncodeWithPadding(raw, n), "same length pads nothing")
			assert.Equal(t, tt.encoded, EncodeWithPadding(raw, n-4), "shorter length never truncates")
			assert.Equal(t, tt.encoded, EncodeWithPadding(raw, -1))
		})
	}
}

func TestEncode_EdgeCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "", Encode(nil))
		assert.Equal(t, "", Encode([]byte{}))
		assert.Equal(t, "00000", EncodeWithPadding(nil, 5))
	})

	t.Run("all zero", func(t *testing.T) {
		assert.Equal(t, "0", Encode([]byte{0}))
		assert.Equal(t, "0", Encode(make([]byte, 21)))
		assert.Equal(t, strings.Repeat("0", 29), EncodeWithPadding(make([]byte, 21), 29))
	})

	t.Run("small values", func(t *testing.T) {
		assert.Equal(t, "1", Encode([]byte{1}))
		assert.Equal(t, "z", Encode([]byte{61}))
		assert.Equal(t, "10", Encode([]byte{62}))
		assert.Equal(t, "47", Encode([]byte{0xFF}))
	})

	t.Run("max 21 bytes fits 29 chars", func(t *testing.T) {
		s := Encode(bytes.Repeat([]byte{0xFF}, 21))
		assert.Len(t, s, 29)
	})
}

func TestDecode(t *testing.T) {
	for _, tt := range vectors {
		t.Run(tt.encoded, func(t *testing.T) {
			raw := mustHex(t, tt.raw)

			got, err := Decode(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, raw, got)

			got, err = Decode("0000" + tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, raw, got, "leading zero symbols do not add bytes")
		})
	}
}

func TestDecode_Zero(t *testing.T) {
	got, err := Decode("0")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, got)

	got, err = Decode("00000")
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, got)
}

func TestDecode_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"punctuation", "01-AB*ab"},
		{"space", "24rUC afW"},
		{"non_ascii", "24rUCé"},
		{"trailing_newline", "24rUCafW\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.False(t, IsValid(tt.input))
		})
	}
}

func TestDecode_CaseSensitive(t *testing.T) {
	// 大小写变体是不同的数字，解码结果必须不同
	upper, err := Decode("A")
	require.NoError(t, err)
	lower, err := Decode("a")
	require.NoError(t, err)
	assert.Equal(t, []byte{10}, upper)
	assert.Equal(t, []byte{36}, lower)

	s := vectors[0].encoded
	swapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
	got, err := Decode(swapped)
	require.NoError(t, err)
	assert.NotEqual(t, mustHex(t, vectors[0].raw), got)
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for size := 1; size <= 64; size++ {
		b := make([]byte, size)
		for i := range b {
			b[i] = byte(r.UintN(256))
		}
		// 首字节非零时往返必须逐字节一致
		b[0] |= 0x01

		enc := Encode(b)
		got, err := Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, b, got, "size %d", size)

		for _, n := range []int{0, size, len(enc) + 3} {
			padded := EncodeWithPadding(b, n)
			assert.Len(t, padded, max(n, len(enc)))
			got, err := Decode(padded)
			require.NoError(t, err)
			assert.Equal(t, b, got)
		}
	}
}

func TestRoundTrip_LeadingZeroBytesNormalized(t *testing.T) {
	b := []byte{0x00, 0x00, 0x01, 0x02}
	got, err := Decode(Encode(b))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, got)
}

func TestEncodeDoesNotMutateInput(t *testing.T) {
	b := mustHex(t, vectors[1].raw)
	orig := bytes.Clone(b)
	_ = Encode(b)
	assert.Equal(t, orig, b)
}
