// Package cache is a small key-value port used for read-through caching.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMiss signals a missing key, distinct from transport errors.
var ErrMiss = errors.New("cache: miss")

// Cache is safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	// Set with a non-positive ttl keeps the key until evicted.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) (int64, error)
}

// GetJSON decodes the cached value at key into dst.
func GetJSON(ctx context.Context, c Cache, key string, dst any) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decoding cached %s: %w", key, err)
	}
	return nil
}

func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return c.Set(ctx, key, string(raw), ttl)
}

func DirectoryKey(journalID int64) string {
	return fmt.Sprintf("directory:journal:%d", journalID)
}
