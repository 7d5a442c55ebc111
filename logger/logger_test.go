// SPDX-License-Identifier: MIT
package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/neuromotif/logger"
)

func TestNew_LevelsAndFormats(t *testing.T) {
	for _, tc := range []struct {
		level, format string
		enabled       zapcore.Level
		disabled      zapcore.Level
	}{
		{"debug", "console", zapcore.DebugLevel, zapcore.InvalidLevel},
		{"info", "", zapcore.InfoLevel, zapcore.DebugLevel},
		{"WARN", "json", zapcore.WarnLevel, zapcore.InfoLevel},
	} {
		l, err := logger.New(tc.level, tc.format)
		require.NoError(t, err, tc.level)
		assert.True(t, l.Core().Enabled(tc.enabled), tc.level)
		if tc.disabled != zapcore.InvalidLevel {
			assert.False(t, l.Core().Enabled(tc.disabled), tc.level)
		}
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := logger.New("loud", "console")
	assert.Error(t, err)

	_, err = logger.New("info", "xml")
	assert.Error(t, err)
}

func TestInitGet(t *testing.T) {
	// Get never returns nil, even before Init.
	assert.NotNil(t, logger.Get())

	require.NoError(t, logger.Init("error", "console"))
	t.Cleanup(func() { logger.Logger = nil })
	assert.Same(t, logger.Logger, logger.Get())
	assert.False(t, logger.Get().Core().Enabled(zapcore.InfoLevel))
	logger.Sync()
}
