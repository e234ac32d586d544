package config

import (
	"errors"
	"fmt"
)

func ValidateForRun(cfg *Config) error {
	var errs []error

	if cfg.Redis != nil && cfg.Redis.Enabled {
		if err := cfg.Redis.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		errs = append(errs, err)
	}

	if cfg.Reminder == nil || cfg.Reminder.Interval <= 0 {
		errs = append(errs, ErrInvalidTickInterval)
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
	}
	return nil
}
