package logging

import (
	"testing"

	"github.com/GoogleCloudPlatform/lineage-diagrammer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		level   zapcore.Level
		wantErr bool
	}{
		{"console info", config.LogConfig{Level: "info", Format: "console"}, zapcore.InfoLevel, false},
		{"json debug", config.LogConfig{Level: "DEBUG", Format: "json"}, zapcore.DebugLevel, false},
		{"empty format is console", config.LogConfig{Level: "warn"}, zapcore.WarnLevel, false},
		{"bad level", config.LogConfig{Level: "loud", Format: "json"}, 0, true},
		{"bad format", config.LogConfig{Level: "info", Format: "xml"}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.level))
			assert.False(t, logger.Core().Enabled(tt.level-1))
		})
	}
}

func TestSetupReplacesGlobals(t *testing.T) {
	before := zap.L()
	restore, err := Setup(config.LogConfig{Level: "error", Format: "json"})
	require.NoError(t, err)

	assert.NotSame(t, before, zap.L())
	assert.False(t, zap.L().Core().Enabled(zapcore.WarnLevel))

	restore()
	assert.Same(t, before, zap.L())
}
