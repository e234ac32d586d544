package config

import (
	"os"
	"strconv"
)

const (
	redisEnabledEnv  = "REDIS_ENABLED"
	redisAddrEnv     = "REDIS_ADDR"
	redisPasswordEnv = "REDIS_PASSWORD"
	redisDBEnv       = "REDIS_DB"
	redisTLSEnv      = "REDIS_TLS"
	redisChannelEnv  = "REDIS_CHANNEL"

	defaultRedisAddr    = "localhost:6379"
	defaultRedisDB      = 0
	defaultRedisChannel = "timetable:reminders"
)

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TLS      bool
	Channel  string
}

func LoadRedisConfig() (*RedisConfig, error) {
	addr := os.Getenv(redisAddrEnv)
	if addr == "" {
		addr = defaultRedisAddr
	}

	password := os.Getenv(redisPasswordEnv)

	db := defaultRedisDB
	if raw := os.Getenv(redisDBEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidRedisDB
		}
		db = parsed
	}

	channel := os.Getenv(redisChannelEnv)
	if channel == "" {
		channel = defaultRedisChannel
	}

	return &RedisConfig{
		Enabled:  os.Getenv(redisEnabledEnv) == "true",
		Addr:     addr,
		Password: password,
		DB:       db,
		TLS:      os.Getenv(redisTLSEnv) == "true",
		Channel:  channel,
	}, nil
}

func (c *RedisConfig) Validate() error {
	if c == nil || c.Addr == "" {
		return ErrRedisAddrMissing
	}
	if c.Channel == "" {
		return ErrRedisChannelMissing
	}
	return nil
}
