package throttle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// throttle key: notif:throttle:<user>:<type>
// Existence of the key means "suppress"; TTL is the throttle window.
func throttleKey(userID uuid.UUID, notifType string) string {
	return fmt.Sprintf("notif:throttle:%s:%s", userID, notifType)
}

type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Throttled(ctx context.Context, userID uuid.UUID, notifType string) (bool, error) {
	n, err := s.rdb.Exists(ctx, throttleKey(userID, notifType)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *RedisStore) MarkSent(ctx context.Context, userID uuid.UUID, notifType string, window time.Duration) error {
	return s.rdb.Set(ctx, throttleKey(userID, notifType), "1", window).Err()
}
