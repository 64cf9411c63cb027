package service

import (
	"context"
	"errors"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	"github.com/debugg-er/zootube-api-sub000/internal/auth/dto"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/events"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/debugg-er/zootube-api-sub000/pkg/paging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type SessionRevokedEvent struct {
	UserID     string   `json:"user_id"`
	SessionIDs []string `json:"session_ids"`
	Reason     string   `json:"reason"`
}

const (
	reasonLogout       = "logout"
	reasonOtherDevices = "logout_other_devices"
	reasonDeleted      = "session_deleted"
	reasonPassword     = "password_changed"
)

// SessionService owns login logs: it starts sessions, ends them and manages a user's devices.
// Every path that ends an active session revokes the token before touching the row.
type SessionService struct {
	logs    domain.LoginLogRepository
	tokens  TokenGenerator
	revoker TokenRevoker
	events  events.Writer
	log     logrus.FieldLogger
	now     func() time.Time
}

func NewSessionService(logs domain.LoginLogRepository, tokens TokenGenerator, revoker TokenRevoker, ev events.Writer, log logrus.FieldLogger) *SessionService {
	if ev == nil {
		ev = events.NoopWriter{}
	}
	return &SessionService{
		logs:    logs,
		tokens:  tokens,
		revoker: revoker,
		events:  ev,
		log:     log.WithField("component", "sessions"),
		now:     time.Now,
	}
}

// Start issues a token for userID and records the login log for the calling device.
func (s *SessionService) Start(ctx context.Context, userID string, device dto.DeviceInput) (*dto.TokenResponse, error) {
	token, claims, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, err
	}

	entry := &domain.LoginLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Token:     token,
		IssuedAt:  claims.IssuedAt.Time,
		ExpireAt:  claims.ExpiresAt.Time,
		IPAddress: device.IPAddress,
		UserAgent: device.UserAgent,
		Device:    ParseDevice(device.UserAgent),
	}
	if err := s.logs.CreateLoginLog(ctx, entry); err != nil {
		return nil, storageErr("create login log", err)
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   constant.DefaultTokenType,
		ExpiresIn:   int64(entry.ExpireAt.Sub(s.now()).Seconds()),
		ExpiresAt:   entry.ExpireAt,
	}, nil
}

// End logs out the session holding token.
func (s *SessionService) End(ctx context.Context, userID, token string) error {
	if err := s.revoker.Revoke(ctx, token); err != nil {
		return err
	}
	if _, err := s.logs.MarkLoggedOut(ctx, userID, []string{token}, s.now()); err != nil {
		return storageErr("mark session logged out", err)
	}
	s.publish(ctx, userID, nil, reasonLogout)
	return nil
}

// EndAll logs out every active session of userID except the one holding keepToken.
// An empty keepToken ends all of them.
func (s *SessionService) EndAll(ctx context.Context, userID, keepToken string) (int, error) {
	return s.endAll(ctx, userID, keepToken, reasonPassword)
}

func (s *SessionService) LogoutOtherDevices(ctx context.Context, userID, currentToken string) (int, error) {
	return s.endAll(ctx, userID, currentToken, reasonOtherDevices)
}

func (s *SessionService) endAll(ctx context.Context, userID, keepToken, reason string) (int, error) {
	now := s.now()
	active, err := s.logs.ListActiveLoginLogs(ctx, userID, now)
	if err != nil {
		return 0, storageErr("list active sessions", err)
	}

	var tokens, ids []string
	for _, entry := range active {
		if entry.Token == keepToken {
			continue
		}
		tokens = append(tokens, entry.Token)
		ids = append(ids, entry.ID)
	}
	if len(tokens) == 0 {
		return 0, nil
	}

	if err := s.revoker.RevokeMany(ctx, tokens); err != nil {
		return 0, err
	}
	if _, err := s.logs.MarkLoggedOut(ctx, userID, tokens, now); err != nil {
		return 0, storageErr("mark sessions logged out", err)
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"count":   len(tokens),
		"reason":  reason,
	}).Info("sessions revoked")
	s.publish(ctx, userID, ids, reason)
	return len(tokens), nil
}

func (s *SessionService) ListSessions(ctx context.Context, userID, currentToken string, page, limit int) (*dto.SessionList, error) {
	page, limit, offset := paging.Normalize(page, limit)

	entries, total, err := s.logs.ListLoginLogs(ctx, userID, limit, offset)
	if err != nil {
		return nil, storageErr("list sessions", err)
	}

	now := s.now()
	items := make([]dto.SessionOutput, 0, len(entries))
	for i := range entries {
		items = append(items, toSessionOutput(&entries[i], currentToken, now))
	}
	return &dto.SessionList{Items: items, Page: page, Limit: limit, Total: total}, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, userID, currentToken, sessionID string) error {
	if _, err := uuid.Parse(sessionID); err != nil {
		return apperror.ErrSessionNotFound
	}

	entry, err := s.logs.GetLoginLog(ctx, userID, sessionID)
	if err != nil {
		return storageErr("get session", err)
	}
	if entry == nil {
		return apperror.ErrSessionNotFound
	}
	if entry.Token == currentToken {
		return apperror.ErrCurrentSession
	}

	if entry.State(s.now()) == domain.SessionActive {
		if err := s.revoker.Revoke(ctx, entry.Token); err != nil {
			return err
		}
	}

	if err := s.logs.DeleteLoginLog(ctx, userID, sessionID); err != nil {
		return storageErr("delete session", err)
	}
	s.publish(ctx, userID, []string{sessionID}, reasonDeleted)
	return nil
}

func (s *SessionService) publish(ctx context.Context, userID string, ids []string, reason string) {
	event := SessionRevokedEvent{UserID: userID, SessionIDs: ids, Reason: reason}
	if err := s.events.Write(ctx, constant.EventSessionRevoked, []byte(userID), event); err != nil {
		s.log.WithError(err).Warn("failed to publish session event")
	}
}

func toSessionOutput(entry *domain.LoginLog, currentToken string, now time.Time) dto.SessionOutput {
	return dto.SessionOutput{
		ID:          entry.ID,
		IPAddress:   entry.IPAddress,
		Browser:     entry.Device.Browser,
		OS:          entry.Device.OS,
		Device:      entry.Device.Device,
		CPU:         entry.Device.CPU,
		IssuedAt:    entry.IssuedAt,
		ExpireAt:    entry.ExpireAt,
		LoggedOutAt: entry.LoggedOutAt,
		State:       string(entry.State(now)),
		Current:     entry.Token == currentToken,
	}
}

// storageErr keeps taxonomy errors from repositories and wraps everything else as a storage failure.
func storageErr(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Storage(op, err)
}
