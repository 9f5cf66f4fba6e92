package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewReturnsLoggerAndError(t *testing.T) {
	log, err := New("info", "console")
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"debug", zapcore.DebugLevel, zapcore.DebugLevel - 1},
		{"warn", zapcore.WarnLevel, zapcore.InfoLevel},
		{"error", zapcore.ErrorLevel, zapcore.WarnLevel},
		{"bogus", zapcore.InfoLevel, zapcore.DebugLevel},
	}
	for _, tc := range cases {
		log, err := New(tc.level, "json")
		require.NoError(t, err, tc.level)
		assert.True(t, log.Core().Enabled(tc.enabled), tc.level)
		assert.False(t, log.Core().Enabled(tc.muted), tc.level)
	}
}
