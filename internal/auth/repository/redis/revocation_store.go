package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore keeps one key per revoked token until the token would have expired anyway.
type RevocationStore struct {
	client redis.UniversalClient
}

func NewRevocationStore(client redis.UniversalClient) *RevocationStore {
	return &RevocationStore{client: client}
}

func (s *RevocationStore) Set(ctx context.Context, token string, claims []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, token, claims, ttl).Err(); err != nil {
		return fmt.Errorf("set revocation entry: %w", err)
	}
	return nil
}

func (s *RevocationStore) Exists(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, token).Result()
	if err != nil {
		return false, fmt.Errorf("check revocation entry: %w", err)
	}
	return n > 0, nil
}
