package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/metrics"
	"github.com/hashicorp/go-multierror"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

const (
	localCacheTTL     = 10 * time.Minute
	localCacheCleanup = 30 * time.Minute
)

type TokenRevoker interface {
	Revoke(ctx context.Context, token string) error
	RevokeMany(ctx context.Context, tokens []string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RevocationService maintains the revocation list. Only positive answers are cached
// locally; a token that is not revoked is always checked against the store.
type RevocationService struct {
	store   domain.RevocationStore
	tokens  TokenGenerator
	local   *cache.Cache
	metrics *metrics.Recorder
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewRevocationService(store domain.RevocationStore, tokens TokenGenerator, m *metrics.Recorder, log logrus.FieldLogger) *RevocationService {
	return &RevocationService{
		store:   store,
		tokens:  tokens,
		local:   cache.New(localCacheTTL, localCacheCleanup),
		metrics: m,
		log:     log.WithField("component", "revocation"),
		now:     time.Now,
	}
}

func (s *RevocationService) Revoke(ctx context.Context, token string) error {
	if err := s.revoke(ctx, token); err != nil {
		return apperror.Revocation(err)
	}
	return nil
}

// RevokeMany attempts every token and fails if any single revocation failed.
func (s *RevocationService) RevokeMany(ctx context.Context, tokens []string) error {
	var result *multierror.Error
	for _, token := range tokens {
		if err := s.revoke(ctx, token); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return apperror.Revocation(err)
	}
	return nil
}

func (s *RevocationService) IsRevoked(ctx context.Context, token string) (bool, error) {
	if _, ok := s.local.Get(cacheKey(token)); ok {
		return true, nil
	}

	revoked, err := s.store.Exists(ctx, token)
	if err != nil {
		return false, err
	}
	if revoked {
		s.local.Set(cacheKey(token), true, localCacheTTL)
	}
	return revoked, nil
}

func (s *RevocationService) revoke(ctx context.Context, token string) error {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return fmt.Errorf("decode token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return fmt.Errorf("token has no expiry")
	}

	remaining := claims.ExpiresAt.Sub(s.now())
	if remaining <= 0 {
		return nil
	}
	ttl := time.Duration(math.Ceil(remaining.Seconds())) * time.Second

	value, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("encode claims: %w", err)
	}

	if err := s.store.Set(ctx, token, value, ttl); err != nil {
		s.metrics.RevocationFailed()
		s.log.WithError(err).WithFields(logrus.Fields{
			"user_id": claims.Subject,
			"jti":     claims.ID,
		}).Error("failed to revoke token")
		return err
	}

	s.local.Set(cacheKey(token), true, min(ttl, localCacheTTL))
	s.metrics.TokenRevoked()
	s.log.WithFields(logrus.Fields{
		"user_id": claims.Subject,
		"jti":     claims.ID,
		"ttl":     ttl.String(),
	}).Info("token revoked")
	return nil
}

func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
