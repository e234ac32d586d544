package config

import "errors"

var (
	ErrRedisAddrMissing    = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB      = errors.New("REDIS_DB must be a valid integer")
	ErrRedisChannelMissing = errors.New("REDIS_CHANNEL is required when redis is enabled")
	ErrInvalidTimezone     = errors.New("TIMEZONE must be a valid IANA time zone name")
	ErrInvalidTickInterval = errors.New("reminder interval must be positive")
)
