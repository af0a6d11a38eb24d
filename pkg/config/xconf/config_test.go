package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Format   string `koanf:"format"`
	Count    int    `koanf:"count"`
	Verbose  bool   `koanf:"verbose"`
	Timezone string `koanf:"timezone"`
	Log      struct {
		Level string `koanf:"level"`
		File  string `koanf:"file"`
	} `koanf:"log"`
}

const testYAML = `
format: inspect
count: 3
verbose: true
timezone: UTC
log:
  level: debug
  file: /tmp/ksuid.log
`

const testJSON = `{
  "format": "time",
  "count": 2,
  "log": {"level": "warn"}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_YAML(t *testing.T) {
	for _, name := range []string{"ksuid.yaml", "ksuid.yml", "KSUID.YAML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, testYAML)
			cfg, err := New(path)
			require.NoError(t, err)

			var s settings
			require.NoError(t, cfg.Unmarshal("", &s))
			assert.Equal(t, "inspect", s.Format)
			assert.Equal(t, 3, s.Count)
			assert.True(t, s.Verbose)
			assert.Equal(t, "UTC", s.Timezone)
			assert.Equal(t, "debug", s.Log.Level)
			assert.Equal(t, "/tmp/ksuid.log", s.Log.File)
		})
	}
}

func TestNew_JSON(t *testing.T) {
	cfg, err := New(writeFile(t, "ksuid.json", testJSON))
	require.NoError(t, err)

	var s settings
	require.NoError(t, cfg.Unmarshal("", &s))
	assert.Equal(t, "time", s.Format)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, "warn", s.Log.Level)
	assert.False(t, s.Verbose)
}

func TestNew_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := New("")
		assert.ErrorIs(t, err, ErrEmptyPath)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := New(writeFile(t, "ksuid.toml", "a = 1"))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, ErrLoadFailed)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := New(writeFile(t, "bad.yaml", "format: [unterminated"))
		assert.ErrorIs(t, err, ErrParseFailed)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := New(writeFile(t, "bad.json", `{"format":`))
		assert.ErrorIs(t, err, ErrParseFailed)
	})
}

func TestNew_EmptyFile(t *testing.T) {
	cfg, err := New(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)

	var s settings
	require.NoError(t, cfg.Unmarshal("", &s))
	assert.Equal(t, settings{}, s)
}

func TestUnmarshal_Path(t *testing.T) {
	cfg, err := New(writeFile(t, "ksuid.yaml", testYAML))
	require.NoError(t, err)

	var log struct {
		Level string `koanf:"level"`
	}
	require.NoError(t, cfg.Unmarshal("log", &log))
	assert.Equal(t, "debug", log.Level)

	assert.ErrorIs(t, cfg.Unmarshal("", 42), ErrUnmarshalFailed)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"a.yaml", FormatYAML, false},
		{"dir/a.YML", FormatYAML, false},
		{"a.json", FormatJSON, false},
		{"a", "", true},
		{"a.txt", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
