// Package config provides centralized configuration for Shepherd.
//
// Configuration lives in a YAML file (written with defaults on first run)
// and can be overridden per-value through SHEPHERD_* environment variables.
// Reminder thresholds are configuration with documented defaults; the zero
// config reproduces the historical behavior of the organizer.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Reminders holds the reminder engine thresholds. Durations are written as
// Go duration strings ("30m", "1h"); unparseable values fall back to the
// defaults.
type Reminders struct {
	// CheckInterval is how often the engine re-evaluates upcoming items.
	// Default: 60s.
	CheckInterval string `yaml:"check_interval"`

	// EventLead is the lead time for event reminders. Default: 30m.
	EventLead string `yaml:"event_lead"`

	// VisitLead is the lead time for same-day visit reminders. Default: 1h.
	VisitLead string `yaml:"visit_lead"`

	// SermonLeadDays is how many days before a draft sermon's date the
	// preparation reminder fires. Default: 1 (i.e. "tomorrow").
	SermonLeadDays int `yaml:"sermon_lead_days"`

	// UrgentCallDays are the weekday names on which the aggregate
	// urgent-calls reminder may fire. Default: Tuesday through Saturday.
	UrgentCallDays []string `yaml:"urgent_call_days"`
}

// Config is the top-level application configuration.
type Config struct {
	// DataDir is the database directory. Default: XDG data home.
	DataDir string `yaml:"data_dir"`

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string `yaml:"log_level"`

	Reminders Reminders `yaml:"reminders"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Reminders: Reminders{
			CheckInterval:  "60s",
			EventLead:      "30m",
			VisitLead:      "1h",
			SermonLeadDays: 1,
			UrgentCallDays: []string{"Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "shepherd", "config.yaml")
}

// Load reads the configuration at path. When the file does not exist the
// defaults are written there (0600) and returned. Environment overrides are
// applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if saveErr := Save(path, cfg); saveErr != nil {
			return nil, saveErr
		}
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SHEPHERD_DATA"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("SHEPHERD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SHEPHERD_CHECK_INTERVAL"); v != "" {
		c.Reminders.CheckInterval = v
	}
	if v := os.Getenv("SHEPHERD_EVENT_LEAD"); v != "" {
		c.Reminders.EventLead = v
	}
	if v := os.Getenv("SHEPHERD_VISIT_LEAD"); v != "" {
		c.Reminders.VisitLead = v
	}
}

func durationOr(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// CheckIntervalDuration returns the parsed check interval.
func (r Reminders) CheckIntervalDuration() time.Duration {
	return durationOr(r.CheckInterval, 60*time.Second)
}

// EventLeadDuration returns the parsed event lead time.
func (r Reminders) EventLeadDuration() time.Duration {
	return durationOr(r.EventLead, 30*time.Minute)
}

// VisitLeadDuration returns the parsed visit lead time.
func (r Reminders) VisitLeadDuration() time.Duration {
	return durationOr(r.VisitLead, time.Hour)
}

// SermonLead returns the sermon lead as a duration of whole days.
func (r Reminders) SermonLead() time.Duration {
	days := r.SermonLeadDays
	if days <= 0 {
		days = 1
	}
	return time.Duration(days) * 24 * time.Hour
}

// UrgentWeekdays returns the set of weekdays on which the urgent-calls
// reminder may fire. Unknown names are ignored; an empty or fully invalid
// list falls back to Tuesday through Saturday.
func (r Reminders) UrgentWeekdays() map[time.Weekday]bool {
	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	days := make(map[time.Weekday]bool)
	for _, n := range r.UrgentCallDays {
		if wd, ok := names[strings.ToLower(strings.TrimSpace(n))]; ok {
			days[wd] = true
		}
	}
	if len(days) == 0 {
		for wd := time.Tuesday; wd <= time.Saturday; wd++ {
			days[wd] = true
		}
	}
	return days
}
