package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const markerPrefix = "view:"

type ViewMarkerStore struct {
	client redis.UniversalClient
}

func NewViewMarkerStore(client redis.UniversalClient) *ViewMarkerStore {
	return &ViewMarkerStore{client: client}
}

// MarkIfAbsent is a single SET NX EX, so two concurrent watches with the same
// fingerprint cannot both win.
func (s *ViewMarkerStore) MarkIfAbsent(ctx context.Context, fingerprint string, window time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, markerPrefix+fingerprint, 1, window).Result()
	if err != nil {
		return false, fmt.Errorf("set view marker: %w", err)
	}
	return ok, nil
}
