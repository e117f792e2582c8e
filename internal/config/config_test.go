package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60*time.Second, cfg.Reminders.CheckIntervalDuration())
	assert.Equal(t, 30*time.Minute, cfg.Reminders.EventLeadDuration())
	assert.Equal(t, time.Hour, cfg.Reminders.VisitLeadDuration())
	assert.Equal(t, 24*time.Hour, cfg.Reminders.SermonLead())

	days := cfg.Reminders.UrgentWeekdays()
	assert.False(t, days[time.Sunday])
	assert.False(t, days[time.Monday])
	for wd := time.Tuesday; wd <= time.Saturday; wd++ {
		assert.True(t, days[wd], wd.String())
	}
}

func TestLoadWritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shepherd", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "60s", cfg.Reminders.CheckInterval)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.LogLevel = "debug"
	cfg.Reminders.EventLead = "45m"
	cfg.Reminders.UrgentCallDays = []string{"Monday", "Friday"}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.LogLevel)
	assert.Equal(t, 45*time.Minute, loaded.Reminders.EventLeadDuration())

	days := loaded.Reminders.UrgentWeekdays()
	assert.True(t, days[time.Monday])
	assert.True(t, days[time.Friday])
	assert.False(t, days[time.Tuesday])
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reminders: [not a map"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SHEPHERD_DATA", "/tmp/shepherd-data")
	t.Setenv("SHEPHERD_EVENT_LEAD", "15m")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/shepherd-data", cfg.DataDir)
	assert.Equal(t, 15*time.Minute, cfg.Reminders.EventLeadDuration())
}

func TestDurationFallbacks(t *testing.T) {
	r := Reminders{
		CheckInterval: "soon",
		EventLead:     "-5m",
		VisitLead:     "",
	}

	assert.Equal(t, 60*time.Second, r.CheckIntervalDuration())
	assert.Equal(t, 30*time.Minute, r.EventLeadDuration())
	assert.Equal(t, time.Hour, r.VisitLeadDuration())
}

func TestSermonLeadFloor(t *testing.T) {
	assert.Equal(t, 24*time.Hour, Reminders{SermonLeadDays: 0}.SermonLead())
	assert.Equal(t, 48*time.Hour, Reminders{SermonLeadDays: 2}.SermonLead())
}

func TestUrgentWeekdaysFallback(t *testing.T) {
	days := Reminders{UrgentCallDays: []string{"someday", "later"}}.UrgentWeekdays()
	assert.False(t, days[time.Sunday])
	assert.True(t, days[time.Wednesday])
	assert.True(t, days[time.Saturday])
}
