package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesFileAndConsole(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "bot.log")
	var console bytes.Buffer

	l, err := New(Config{Level: "INFO", FilePath: path, Console: &console})
	require.NoError(t, err)

	named := l.Named("market_orders")
	named.Infof("Placing MARKET %s %v %s", "BUY", 0.01, "BTCUSDT")
	named.Debug("보이면 안 되는 디버그 로그")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	for _, out := range []string{string(data), console.String()} {
		assert.Contains(t, out, " | INFO | market_orders | Placing MARKET BUY 0.01 BTCUSDT")
		assert.NotContains(t, out, "디버그")
	}
}

func TestNew_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")
	require.NoError(t, os.WriteFile(path, []byte("previous line\n"), 0o644))

	l, err := New(Config{Level: "INFO", FilePath: path, Console: &bytes.Buffer{}})
	require.NoError(t, err)
	l.Named("mock_demo").Info("second run")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "previous line\n")
	assert.Contains(t, string(data), "| mock_demo | second run")
}

func TestNew_EmptyPath(t *testing.T) {
	_, err := New(Config{Level: "INFO"})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"DEBUG", zapcore.DebugLevel},
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"WARNING", zapcore.WarnLevel},
		{"warn", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"critical", zapcore.DPanicLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}
