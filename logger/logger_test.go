package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerNeverNil(t *testing.T) {
	// Package init installs a nop logger, so logging before Initialize is
	// safe.
	require.NotNil(t, Logger)
	Logger.Infow("pre-initialize log call")
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		level string
	}{
		{"console info", false, "info"},
		{"json debug", true, "debug"},
		{"unparseable level falls back to info", false, "chatty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.json, tt.level)
			require.NoError(t, err)
			assert.NotNil(t, Logger)
			Logger.Debugw("initialized", "json", tt.json, "level", tt.level)
		})
	}
}

func TestNamed(t *testing.T) {
	require.NoError(t, Initialize(false, "info"))
	child := Named("langserver")
	assert.NotNil(t, child)
}
