package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT", "HOST", "MOTIONFOLIO_ATTACH_GRACE", "MOTIONFOLIO_MAX_PENDING")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 30*time.Second, cfg.AttachGrace)
	assert.Equal(t, 1024, cfg.MaxPending)
	assert.Equal(t, DefaultTiming(), cfg.Timing)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("MOTIONFOLIO_DEMO_TICK", "10ms")
	t.Setenv("MOTIONFOLIO_MARKERS", "12")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, 10*time.Millisecond, cfg.Timing.DemoTick)
	assert.Equal(t, 12, cfg.Timing.Markers)
	assert.Equal(t, 3, cfg.Timing.DemoStep)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MOTIONFOLIO_DEMO_TICK", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("MOTIONFOLIO_DEMO_TICK", "0s")
	_, err = Load()
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidateTooltipOrder(t *testing.T) {
	cfg := Config{Port: "1", AttachGrace: time.Second, MaxPending: 1, Timing: DefaultTiming()}
	require.NoError(t, cfg.Validate())

	cfg.Timing.TooltipTimeout = time.Second
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestValidateMaxPending(t *testing.T) {
	cfg := Config{Port: "1", AttachGrace: time.Second, MaxPending: 0, Timing: DefaultTiming()}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		// Setenv registers the restore on cleanup
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
