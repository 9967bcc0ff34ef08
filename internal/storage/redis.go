package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rehanmiah/the-palace-v1-sub000/internal/domain"
)

// RedisCartArchive keeps JSON snapshots of session carts so a restarted
// process can hand the session its cart back. TTL bounds abandoned carts.
type RedisCartArchive struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCartArchive(client *redis.Client, ttl time.Duration) *RedisCartArchive {
	return &RedisCartArchive{Client: client, TTL: ttl}
}

func (a *RedisCartArchive) CartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (a *RedisCartArchive) Save(ctx context.Context, sessionID string, snap domain.CartSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return a.Client.Set(ctx, a.CartKey(sessionID), payload, a.TTL).Err()
}

func (a *RedisCartArchive) Load(ctx context.Context, sessionID string) (*domain.CartSnapshot, error) {
	payload, err := a.Client.Get(ctx, a.CartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snap domain.CartSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (a *RedisCartArchive) Delete(ctx context.Context, sessionID string) error {
	return a.Client.Del(ctx, a.CartKey(sessionID)).Err()
}
