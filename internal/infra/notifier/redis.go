package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-timetable/internal/domain"
)

const (
	recentKeySuffix = ":recent"
	recentLimit     = 100
	recentTTL       = 24 * time.Hour
)

// RedisNotifier publishes reminders on a pub/sub channel and keeps the
// latest ones in a capped list under "<channel>:recent".
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

func NewRedisNotifier(client *redis.Client, channel string) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
	}
}

func (n *RedisNotifier) Name() string {
	return "redis"
}

func (n *RedisNotifier) RecentKey() string {
	return n.channel + recentKeySuffix
}

func (n *RedisNotifier) Notify(ctx context.Context, reminder *domain.Reminder) error {
	payload, err := json.Marshal(reminder)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	key := n.RecentKey()

	pipe := n.client.TxPipeline()
	pipe.Publish(ctx, n.channel, payload)
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, recentLimit-1)
	pipe.Expire(ctx, key, recentTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRedisPublish, err)
	}
	return nil
}

// Recent returns up to limit of the most recently published reminders,
// newest first.
func (n *RedisNotifier) Recent(ctx context.Context, limit int) ([]*domain.Reminder, error) {
	if limit <= 0 || limit > recentLimit {
		limit = recentLimit
	}

	raw, err := n.client.LRange(ctx, n.RecentKey(), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRedisPublish, err)
	}

	reminders := make([]*domain.Reminder, 0, len(raw))
	for _, item := range raw {
		var reminder domain.Reminder
		if err := json.Unmarshal([]byte(item), &reminder); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidReminderData, err)
		}
		reminders = append(reminders, &reminder)
	}

	return reminders, nil
}
