package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/prepwise-app/prepwise-api/pkg/config"
)

// NewRedisClient creates a Redis client and verifies connectivity
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Println("✅ Redis connected successfully")
	return client, nil
}

// SessionStore stores refresh token sessions in Redis, keyed by user and
// token hash, expiring with the token.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a new Redis-backed session store
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func sessionKey(userID uuid.UUID, tokenHash string) string {
	return fmt.Sprintf("session:%s:%s", userID.String(), tokenHash)
}

// SaveSession records an active refresh token session
func (s *SessionStore) SaveSession(ctx context.Context, userID uuid.UUID, tokenHash string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey(userID, tokenHash), time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// SessionExists reports whether a refresh token session is still active
func (s *SessionStore) SessionExists(ctx context.Context, userID uuid.UUID, tokenHash string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(userID, tokenHash)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

// DeleteSession revokes a single refresh token session
func (s *SessionStore) DeleteSession(ctx context.Context, userID uuid.UUID, tokenHash string) error {
	if err := s.client.Del(ctx, sessionKey(userID, tokenHash)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
