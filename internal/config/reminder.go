package config

import (
	"os"
	"strconv"
	"time"
)

const (
	reminderIntervalSecondsEnv = "REMINDER_INTERVAL_SECONDS"
	reminderAutoStartEnv       = "REMINDER_AUTOSTART"

	defaultReminderIntervalSeconds = 60
)

type ReminderConfig struct {
	Interval  time.Duration
	AutoStart bool
}

func LoadReminderConfig() *ReminderConfig {
	intervalSeconds := defaultReminderIntervalSeconds
	if v := os.Getenv(reminderIntervalSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			intervalSeconds = parsed
		}
	}

	autoStart := true
	if v := os.Getenv(reminderAutoStartEnv); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			autoStart = parsed
		}
	}

	return &ReminderConfig{
		Interval:  time.Duration(intervalSeconds) * time.Second,
		AutoStart: autoStart,
	}
}
