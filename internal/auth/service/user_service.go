package service

import (
	"context"
	"sync"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	"github.com/debugg-er/zootube-api-sub000/internal/auth/dto"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// unknownUserHash is compared against when no user matches, so both failure paths pay for bcrypt.
func unknownUserHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), bcrypt.DefaultCost)
	})
	return dummyHash
}

type UserService struct {
	repo            domain.UserRepository
	sessions        *SessionService
	log             logrus.FieldLogger
	now             func() time.Time
	comparePassword func(hash, password []byte) error
}

func NewUserService(repo domain.UserRepository, sessions *SessionService, log logrus.FieldLogger) *UserService {
	return &UserService{
		repo:            repo,
		sessions:        sessions,
		log:             log.WithField("component", "users"),
		now:             time.Now,
		comparePassword: bcrypt.CompareHashAndPassword,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput, device dto.DeviceInput) (*dto.TokenResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, storageErr("get user by email", err)
	}
	if existing != nil {
		return nil, apperror.ErrEmailAlreadyInUse
	}

	existing, err = s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, storageErr("get user by username", err)
	}
	if existing != nil {
		return nil, apperror.ErrUsernameAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FullName:     input.FullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storageErr("create user", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "ip": device.IPAddress}).Info("user registered")
	return s.sessions.Start(ctx, user.ID, device)
}

func (s *UserService) Login(ctx context.Context, input dto.LoginInput, device dto.DeviceInput) (*dto.TokenResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, storageErr("get user by email", err)
	}

	hash := unknownUserHash()
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if s.comparePassword(hash, []byte(input.Password)) != nil || user == nil {
		s.log.WithFields(logrus.Fields{"email": input.Email, "ip": device.IPAddress}).Warn("login failed")
		return nil, apperror.ErrInvalidCredentials
	}
	if user.Blocked {
		s.log.WithFields(logrus.Fields{"user_id": user.ID, "ip": device.IPAddress}).Warn("blocked account tried to log in")
		return nil, apperror.ErrAccountBlocked
	}

	resp, err := s.sessions.Start(ctx, user.ID, device)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user_id": user.ID, "ip": device.IPAddress}).Info("login succeeded")
	return resp, nil
}

func (s *UserService) Logout(ctx context.Context, userID, token string) error {
	return s.sessions.End(ctx, userID, token)
}

// ChangePassword ends every active session of the user, the caller's included, and
// returns a fresh token for the calling device.
func (s *UserService) ChangePassword(ctx context.Context, userID string, input dto.ChangePasswordInput, device dto.DeviceInput) (*dto.TokenResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, storageErr("get user", err)
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	if s.comparePassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdatePassword(ctx, userID, string(hashedPassword), s.now()); err != nil {
		return nil, storageErr("update password", err)
	}

	if _, err := s.sessions.EndAll(ctx, userID, ""); err != nil {
		return nil, err
	}
	return s.sessions.Start(ctx, userID, device)
}

func (s *UserService) Me(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, storageErr("get user", err)
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}
	return &dto.UserOutput{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}, nil
}
