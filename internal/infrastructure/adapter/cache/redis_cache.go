// Package cache provides read-side caching for query endpoints. Entries are
// invalidated whenever a transfer touches either party, so cached views are
// never older than the last balance change.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store caches JSON-serializable query results in Redis
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a cache store with the given default TTL
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// BalanceKey returns the cache key for a user's balance view
func BalanceKey(userID uint64) string {
	return fmt.Sprintf("cache:balance:%d", userID)
}

// HistoryKey returns the cache key for one of a user's history views.
// Scope is "all", "sent" or "received".
func HistoryKey(userID uint64, scope string) string {
	return fmt.Sprintf("cache:history:%d:%s", userID, scope)
}

// GetJSON reads a cached value into dest. Returns false on a miss.
func (s *Store) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value under the key with the store's default TTL
func (s *Store) SetJSON(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, payload, s.ttl).Err()
}

// InvalidateUser drops every cached view belonging to the user
func (s *Store) InvalidateUser(ctx context.Context, userID uint64) error {
	keys := []string{
		BalanceKey(userID),
		HistoryKey(userID, "all"),
		HistoryKey(userID, "sent"),
		HistoryKey(userID, "received"),
	}
	return s.client.Del(ctx, keys...).Err()
}
