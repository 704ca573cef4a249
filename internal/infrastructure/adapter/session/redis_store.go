package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	authport "github.com/sealpay/wallet-ledger/internal/domain/port/auth"
)

const (
	sessionKeyPrefix = "session:"
	userSetPrefix    = "session:user:"
)

// RedisStore implements SessionStore with refresh tokens held in Redis.
// Tokens are opaque random values; Redis TTL bounds their lifetime.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store backed by the given Redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create stores a new session and returns its refresh token
func (s *RedisStore) Create(ctx context.Context, identity authport.Identity, ttl time.Duration) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("generate refresh token: %w", err)
	}

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	// The per-user set indexes tokens for bulk revocation on logout. Its
	// expiry is refreshed on every issue, so it outlives every member token.
	userKey := userSessionsKey(identity.UserID)
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+token, payload, ttl)
	pipe.SAdd(ctx, userKey, token)
	pipe.Expire(ctx, userKey, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return token, nil
}

// Get resolves a refresh token to the identity it was issued for
func (s *RedisStore) Get(ctx context.Context, token string) (*authport.Identity, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrInvalidToken
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}

	var identity authport.Identity
	if err := json.Unmarshal([]byte(val), &identity); err != nil {
		return nil, errs.ErrInvalidToken
	}
	return &identity, nil
}

// Delete revokes a refresh token. The per-user set keeps the stale member;
// revoking it again later is a no-op.
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return nil
}

// DeleteAllForUser revokes every refresh token issued to the user
func (s *RedisStore) DeleteAllForUser(ctx context.Context, userID uint64) error {
	userKey := userSessionsKey(userID)

	tokens, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}

	keys := make([]string, 0, len(tokens)+1)
	for _, token := range tokens {
		keys = append(keys, sessionKeyPrefix+token)
	}
	keys = append(keys, userKey)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return nil
}

func userSessionsKey(userID uint64) string {
	return fmt.Sprintf("%s%d", userSetPrefix, userID)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
