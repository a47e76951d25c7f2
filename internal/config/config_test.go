package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the test; t.Setenv restores them afterwards.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "DOCHAZKA_DB", "DOCHAZKA_TICK_INTERVAL", "DOCHAZKA_LOG_EVENTS")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DBPath)
	assert.False(t, cfg.Durable())
	assert.Equal(t, time.Second, cfg.TickInterval)
	assert.False(t, cfg.LogEvents)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DOCHAZKA_DB", "/tmp/shifts.db")
	t.Setenv("DOCHAZKA_TICK_INTERVAL", "250ms")
	t.Setenv("DOCHAZKA_LOG_EVENTS", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shifts.db", cfg.DBPath)
	assert.True(t, cfg.Durable())
	assert.Equal(t, 250*time.Millisecond, cfg.TickInterval)
	assert.True(t, cfg.LogEvents)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("DOCHAZKA_TICK_INTERVAL", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DOCHAZKA_TICK_INTERVAL", "-1s")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("DOCHAZKA_TICK_INTERVAL", "1s")
	t.Setenv("DOCHAZKA_LOG_EVENTS", "maybe")
	_, err = Load()
	assert.Error(t, err)
}
