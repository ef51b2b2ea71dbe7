package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ticket-tracker", cfg.App.Name)
	assert.Equal(t, "America/New_York", cfg.Tracker.Timezone)
	assert.Empty(t, cfg.Tracker.Users)
	assert.Equal(t, "tickets.events", cfg.Notification.Channel)
}

func TestTrackerUsersFromEnv(t *testing.T) {
	t.Setenv("TRACKER_USERS", "alpha, beta ,,gamma")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, cfg.Tracker.Users)
}

func TestTrackerLocation(t *testing.T) {
	tracker := TrackerConfig{Timezone: "UTC"}
	loc, err := tracker.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	tracker.Timezone = "Not/AZone"
	_, err = tracker.Location()
	assert.Error(t, err)
}

func TestAppAddrAndTimeout(t *testing.T) {
	app := AppConfig{Host: "127.0.0.1", Port: "9000", RequestTimeoutSeconds: 15}
	assert.Equal(t, "127.0.0.1:9000", app.Addr())
	assert.Equal(t, "15s", app.RequestTimeout().String())

	app.RequestTimeoutSeconds = 0
	assert.Zero(t, app.RequestTimeout())
}
