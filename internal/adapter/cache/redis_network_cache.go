// Package cache implements caches backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pulse-network-organizer/internal/entities"
	"pulse-network-organizer/internal/repository"

	"github.com/redis/go-redis/v9"
)

const (
	networkSnapshotKey   = "network:graph"
	networkGenerationKey = "network:graph:generation"
)

// RedisNetworkCache implements NetworkCache backed by Redis.
type RedisNetworkCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ repository.NetworkCache = (*RedisNetworkCache)(nil)

// NewRedisNetworkCache constructs a Redis-backed snapshot cache.
func NewRedisNetworkCache(client redis.UniversalClient, ttl time.Duration) *RedisNetworkCache {
	return &RedisNetworkCache{client: client, ttl: ttl}
}

// Generation returns the invalidation counter, 0 before the first invalidation.
func (c *RedisNetworkCache) Generation(ctx context.Context) (int64, error) {
	return readGeneration(ctx, c.client)
}

// GetSnapshot loads the cached snapshot, nil when absent.
func (c *RedisNetworkCache) GetSnapshot(ctx context.Context) (*entities.NetworkSnapshot, error) {
	payload, err := c.client.Get(ctx, networkSnapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap entities.NetworkSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot stores the snapshot with the configured TTL if no invalidation
// happened since generation was read.
func (c *RedisNetworkCache) SaveSnapshot(ctx context.Context, generation int64, snap entities.NetworkSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if cur != generation {
			return entities.ErrStaleSnapshot
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, networkSnapshotKey, payload, c.ttl)
			return nil
		})
		return err
	}, networkGenerationKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, entities.ErrStaleSnapshot), errors.Is(err, redis.TxFailedErr):
		return entities.ErrStaleSnapshot
	default:
		return fmt.Errorf("persist snapshot: %w", err)
	}
}

// Invalidate drops the cached snapshot and bumps the generation in one transaction.
func (c *RedisNetworkCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, networkGenerationKey)
		pipe.Del(ctx, networkSnapshotKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGeneration(ctx context.Context, cmd getter) (int64, error) {
	gen, err := cmd.Get(ctx, networkGenerationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("load snapshot generation: %w", err)
	}
	return gen, nil
}

// NoopNetworkCache never stores anything.
type NoopNetworkCache struct{}

var _ repository.NetworkCache = NoopNetworkCache{}

// Generation is always 0.
func (NoopNetworkCache) Generation(context.Context) (int64, error) {
	return 0, nil
}

// GetSnapshot always misses.
func (NoopNetworkCache) GetSnapshot(context.Context) (*entities.NetworkSnapshot, error) {
	return nil, nil
}

// SaveSnapshot discards the snapshot.
func (NoopNetworkCache) SaveSnapshot(context.Context, int64, entities.NetworkSnapshot) error {
	return nil
}

// Invalidate does nothing.
func (NoopNetworkCache) Invalidate(context.Context) error {
	return nil
}
