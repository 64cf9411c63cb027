package service

import (
	"strings"
	"testing"
	"time"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	tests := []struct {
		name          string
		accessSecret  string
		accessMinutes int
	}{
		{name: "valid parameters", accessSecret: "access-secret-key", accessMinutes: 15},
		{name: "empty secret", accessSecret: "", accessMinutes: 10080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := NewTokenService(tt.accessSecret, tt.accessMinutes)

			assert.NotNil(t, ts)
			assert.Equal(t, tt.accessSecret, ts.AccessTokenSecret)
			assert.Equal(t, time.Duration(tt.accessMinutes)*time.Minute, ts.AccessTokenExpiry)
			assert.Equal(t, ts.AccessTokenExpiry, ts.Expiry())
		})
	}
}

func TestTokenService_Issue(t *testing.T) {
	ts := NewTokenService("test-access-secret-key-123", 15)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	ts.now = func() time.Time { return fixed }

	token, claims, err := ts.Issue("user-123")
	require.NoError(t, err)

	assert.Len(t, strings.Split(token, "."), 3)
	assert.Equal(t, "user-123", claims.UserID())
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, fixed, claims.IssuedAt.Time.UTC())
	assert.Equal(t, fixed.Add(15*time.Minute), claims.ExpiresAt.Time.UTC())

	_, other, err := ts.Issue("user-123")
	require.NoError(t, err)
	assert.NotEqual(t, claims.ID, other.ID, "jti must be unique per token")
}

func TestTokenService_Verify(t *testing.T) {
	ts := NewTokenService("secret", 15)
	token, _, err := ts.Issue("user-1")
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		claims, err := ts.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID())
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", 15)
		_, err := other.Verify(token)
		assert.Equal(t, apperror.ErrInvalidToken, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewTokenService("secret", 15)
		expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
		old, _, err := expired.Issue("user-1")
		require.NoError(t, err)

		_, err = ts.Verify(old)
		assert.Equal(t, apperror.ErrExpiredToken, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ts.Verify("not.a.token")
		assert.Equal(t, apperror.ErrInvalidToken, err)
	})

	t.Run("rejects non-HMAC signing method", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = ts.Verify(unsigned)
		assert.Equal(t, apperror.ErrInvalidToken, err)
	})
}

func TestTokenService_Decode(t *testing.T) {
	ts := NewTokenService("secret", 15)
	ts.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, issued, err := ts.Issue("user-9")
	require.NoError(t, err)

	claims, err := NewTokenService("different", 15).Decode(expired)
	require.NoError(t, err)
	assert.Equal(t, "user-9", claims.UserID())
	assert.Equal(t, issued.ExpiresAt.Unix(), claims.ExpiresAt.Unix())

	_, err = ts.Decode("garbage")
	assert.Equal(t, apperror.ErrInvalidToken, err)
}
