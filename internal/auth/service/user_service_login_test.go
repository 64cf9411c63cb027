package service

import (
	"context"
	"testing"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	"github.com/debugg-er/zootube-api-sub000/internal/auth/dto"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type singleUserRepo struct {
	user *domain.User
}

func (r singleUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

func (r singleUserRepo) GetByUsername(context.Context, string) (*domain.User, error) { return nil, nil }

func (r singleUserRepo) GetByID(context.Context, string) (*domain.User, error) { return nil, nil }

func (r singleUserRepo) Create(context.Context, *domain.User) error { return nil }

func (r singleUserRepo) UpdatePassword(context.Context, string, string, time.Time) error { return nil }

func TestLogin_UnknownEmailStillComparesPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := singleUserRepo{user: &domain.User{ID: "user-1", Email: "alice@example.com", PasswordHash: string(hash)}}

	s := NewUserService(repo, nil, logrus.New())
	var compared [][]byte
	s.comparePassword = func(h, pw []byte) error {
		compared = append(compared, h)
		return bcrypt.CompareHashAndPassword(h, pw)
	}

	_, err = s.Login(context.Background(), dto.LoginInput{Email: "ghost@example.com", Password: "password123"}, dto.DeviceInput{})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)

	_, err = s.Login(context.Background(), dto.LoginInput{Email: "alice@example.com", Password: "wrong-password"}, dto.DeviceInput{})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)

	require.Len(t, compared, 2)
	assert.Equal(t, unknownUserHash(), compared[0])
	assert.Equal(t, hash, compared[1])

	cost, err := bcrypt.Cost(unknownUserHash())
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestLogin_UnknownEmailNeverMatchesPlaceholder(t *testing.T) {
	s := NewUserService(singleUserRepo{}, nil, logrus.New())

	_, err := s.Login(context.Background(), dto.LoginInput{Email: "ghost@example.com", Password: "unknown-user-placeholder"}, dto.DeviceInput{})
	assert.Equal(t, apperror.ErrInvalidCredentials, err)
}
