package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zap.DebugLevel,
		"DEBUG":   zap.DebugLevel,
		"warn":    zap.WarnLevel,
		"warning": zap.WarnLevel,
		"error":   zap.ErrorLevel,
		"info":    zap.InfoLevel,
		"":        zap.InfoLevel,
		"verbose": zap.InfoLevel,
	}

	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("warn"))

	assert.False(t, L().Core().Enabled(zap.InfoLevel))
	assert.True(t, L().Core().Enabled(zap.WarnLevel))
	assert.Same(t, L(), zap.L())
	assert.NotNil(t, S())

	require.NoError(t, Init("debug"))
	assert.True(t, L().Core().Enabled(zap.DebugLevel))
}

func TestSet_ReplacesGlobals(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	set(zap.New(core))

	S().Infow("generated", "service", "Route53")
	Sync()

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "generated", entry.Message)
	assert.Equal(t, "Route53", entry.ContextMap()["service"])
}
