package logutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"ERROR": zapcore.ErrorLevel,
		"warn":  zapcore.WarnLevel,
		"INFO":  zapcore.InfoLevel,
		"DEBUG": zapcore.DebugLevel,
		"TRACE": zapcore.DebugLevel,
		"CRIT":  zapcore.FatalLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNewLoggerDisabled(t *testing.T) {
	logger, err := NewLogger(LogSettings{Enabled: false})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLoggerWritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "wc-signer.log")
	logger, err := NewLogger(LogSettings{
		Enabled:    true,
		Level:      "DEBUG",
		File:       file,
		MaxSize:    1,
		MaxBackups: 1,
	})
	require.NoError(t, err)

	logger.Debug("sign request received", zap.Int64("id", 1))
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"sign request received"`)
	require.Contains(t, string(data), `"id":1`)
}

func TestOverrideRootLogger(t *testing.T) {
	previous := ZapLogger()
	defer OverrideRootLogger(previous)

	nop := zap.NewNop()
	OverrideRootLogger(nop)
	require.Same(t, nop, ZapLogger())
}
