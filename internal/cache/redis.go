package cache

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func streakKey(userID uint) string {
	return fmt.Sprintf("streak:%d", userID)
}

// GetStreak returns the cached consecutive-day count for the user, with
// ok=false on a miss or any Redis error.
func (r *RedisClient) GetStreak(userID uint) (int, bool) {
	days, err := r.client.Get(r.ctx, streakKey(userID)).Int()
	if err != nil {
		return 0, false
	}
	return days, true
}

// SetStreak caches the streak until the next local midnight; the value is
// anchored to "today" and goes stale when the day rolls over.
func (r *RedisClient) SetStreak(userID uint, days int) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	r.client.Set(r.ctx, streakKey(userID), days, midnight.Sub(now))
}

func (r *RedisClient) InvalidateStreak(userID uint) {
	r.client.Del(r.ctx, streakKey(userID))
}
