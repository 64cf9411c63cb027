package domain

//go:generate mockgen -destination=../../mocks/mock_auth_repository.go -package=mocks github.com/debugg-er/zootube-api-sub000/internal/auth/domain UserRepository,LoginLogRepository,RevocationStore

import (
	"context"
	"time"
)

// UserRepository lookups return (nil, nil) when no row matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error
}

type LoginLogRepository interface {
	CreateLoginLog(ctx context.Context, log *LoginLog) error
	ListLoginLogs(ctx context.Context, userID string, limit, offset int) ([]LoginLog, int, error)
	// GetLoginLog returns (nil, nil) when the row is missing or belongs to another user.
	GetLoginLog(ctx context.Context, userID, id string) (*LoginLog, error)
	ListActiveLoginLogs(ctx context.Context, userID string, now time.Time) ([]LoginLog, error)
	MarkLoggedOut(ctx context.Context, userID string, tokens []string, at time.Time) (int64, error)
	DeleteLoginLog(ctx context.Context, userID, id string) error
}

// RevocationStore is the TTL key-value store backing the revocation list.
// Keys are raw token strings; values are the serialized claims.
type RevocationStore interface {
	Set(ctx context.Context, token string, claims []byte, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
}
