package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/debugg-er/zootube-api-sub000/internal/auth/service TokenGenerator,TokenRevoker

import (
	"errors"
	"fmt"
	"time"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	Issue(userID string) (string, *Claims, error)
	Verify(tokenString string) (*Claims, error)
	Decode(tokenString string) (*Claims, error)
	Expiry() time.Duration
}

// Claims carries sub (user id), iat, exp and jti.
type Claims struct {
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string { return c.Subject }

type TokenService struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
	now               func() time.Time
}

func NewTokenService(accessSecret string, accessMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret: accessSecret,
		AccessTokenExpiry: time.Duration(accessMinutes) * time.Minute,
		now:               time.Now,
	}
}

func (ts *TokenService) Issue(userID string) (string, *Claims, error) {
	now := ts.now().Truncate(time.Second)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, claims, nil
}

func (ts *TokenService) Expiry() time.Duration {
	return ts.AccessTokenExpiry
}

// Verify checks signature and expiry only. Revocation is the caller's concern.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	}, jwt.WithTimeFunc(ts.now), jwt.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperror.ErrExpiredToken
		}
		return nil, apperror.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, apperror.ErrInvalidToken
	}

	return claims, nil
}

// Decode reads the claims without checking the signature or expiry.
func (ts *TokenService) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, apperror.ErrInvalidToken
	}
	return claims, nil
}
