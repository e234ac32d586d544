package notifier

import "errors"

var (
	ErrRedisPublish        = errors.New("redis reminder publish error")
	ErrInvalidReminderData = errors.New("invalid reminder data")
)
