package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVariant(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"classic", "treasure"},
		{"platformer", "treasure_platformer"},
		{"treasure", "treasure"},
		{"treasure_platformer", "treasure_platformer"},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			id, err := resolveVariant(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}

	_, err := resolveVariant("flappy")
	assert.Error(t, err)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	old := flagLogLevel
	t.Cleanup(func() { flagLogLevel = old })

	flagLogLevel = "loud"
	_, _, err := newLogger(nil)
	assert.Error(t, err)

	flagLogLevel = "debug"
	logger, closeFn, err := newLogger(nil)
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, logger)
}
