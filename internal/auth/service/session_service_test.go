package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	"github.com/debugg-er/zootube-api-sub000/internal/auth/dto"
	"github.com/debugg-er/zootube-api-sub000/internal/auth/service"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/mocks"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionID = "7f1c0a52-41a6-4b6e-9d0f-3f0a6f2b9c11"

type sessionMocks struct {
	logs    *mocks.MockLoginLogRepository
	tokens  *mocks.MockTokenGenerator
	revoker *mocks.MockTokenRevoker
	events  *mocks.MockWriter
}

func newSessionService(t *testing.T) (*service.SessionService, *sessionMocks) {
	ctrl := gomock.NewController(t)
	m := &sessionMocks{
		logs:    mocks.NewMockLoginLogRepository(ctrl),
		tokens:  mocks.NewMockTokenGenerator(ctrl),
		revoker: mocks.NewMockTokenRevoker(ctrl),
		events:  mocks.NewMockWriter(ctrl),
	}
	m.events.EXPECT().Write(gomock.Any(), constant.EventSessionRevoked, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return service.NewSessionService(m.logs, m.tokens, m.revoker, m.events, logrus.New()), m
}

func issuedClaims(userID string, ttl time.Duration) *service.Claims {
	now := time.Now().Truncate(time.Second)
	return &service.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   userID,
		ID:        "jti-1",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
}

func TestSessionService_Start(t *testing.T) {
	s, m := newSessionService(t)
	claims := issuedClaims("user-1", time.Hour)

	m.tokens.EXPECT().Issue("user-1").Return("tok", claims, nil)
	m.logs.EXPECT().CreateLoginLog(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, entry *domain.LoginLog) error {
		assert.Equal(t, "user-1", entry.UserID)
		assert.Equal(t, "tok", entry.Token)
		assert.Equal(t, "10.0.0.1", entry.IPAddress)
		assert.Equal(t, claims.ExpiresAt.Time, entry.ExpireAt)
		assert.Equal(t, service.DeviceDesktop, entry.Device.Device)
		assert.NotEmpty(t, entry.ID)
		return nil
	})

	resp, err := s.Start(context.Background(), "user-1", dto.DeviceInput{
		IPAddress: "10.0.0.1",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
	})
	require.NoError(t, err)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.InDelta(t, 3600, resp.ExpiresIn, 2)
}

func TestSessionService_StartStorageFailure(t *testing.T) {
	s, m := newSessionService(t)
	m.tokens.EXPECT().Issue("user-1").Return("tok", issuedClaims("user-1", time.Hour), nil)
	m.logs.EXPECT().CreateLoginLog(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	_, err := s.Start(context.Background(), "user-1", dto.DeviceInput{})
	assert.True(t, apperror.IsKind(err, apperror.KindStorage))
}

func TestSessionService_End(t *testing.T) {
	t.Run("revokes then marks logged out", func(t *testing.T) {
		s, m := newSessionService(t)
		gomock.InOrder(
			m.revoker.EXPECT().Revoke(gomock.Any(), "tok").Return(nil),
			m.logs.EXPECT().MarkLoggedOut(gomock.Any(), "user-1", []string{"tok"}, gomock.Any()).Return(int64(1), nil),
		)
		assert.NoError(t, s.End(context.Background(), "user-1", "tok"))
	})

	t.Run("revocation failure is not swallowed", func(t *testing.T) {
		s, m := newSessionService(t)
		m.revoker.EXPECT().Revoke(gomock.Any(), "tok").Return(apperror.Revocation(errors.New("redis down")))

		err := s.End(context.Background(), "user-1", "tok")
		assert.Equal(t, 500, apperror.StatusOf(err))
	})
}

func TestSessionService_DeleteSession(t *testing.T) {
	active := &domain.LoginLog{ID: sessionID, UserID: "user-1", Token: "other-tok", ExpireAt: time.Now().Add(time.Hour)}

	t.Run("current session is rejected", func(t *testing.T) {
		s, m := newSessionService(t)
		current := *active
		current.Token = "current-tok"
		m.logs.EXPECT().GetLoginLog(gomock.Any(), "user-1", sessionID).Return(&current, nil)

		err := s.DeleteSession(context.Background(), "user-1", "current-tok", sessionID)
		assert.Equal(t, apperror.ErrCurrentSession, err)
		assert.Equal(t, 400, apperror.StatusOf(err))
	})

	t.Run("unknown session", func(t *testing.T) {
		s, m := newSessionService(t)
		m.logs.EXPECT().GetLoginLog(gomock.Any(), "user-1", sessionID).Return(nil, nil)

		err := s.DeleteSession(context.Background(), "user-1", "current-tok", sessionID)
		assert.Equal(t, apperror.ErrSessionNotFound, err)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		s, _ := newSessionService(t)
		err := s.DeleteSession(context.Background(), "user-1", "current-tok", "not-a-uuid")
		assert.Equal(t, apperror.ErrSessionNotFound, err)
	})

	t.Run("active session is revoked before the row is deleted", func(t *testing.T) {
		s, m := newSessionService(t)
		m.logs.EXPECT().GetLoginLog(gomock.Any(), "user-1", sessionID).Return(active, nil)
		gomock.InOrder(
			m.revoker.EXPECT().Revoke(gomock.Any(), "other-tok").Return(nil),
			m.logs.EXPECT().DeleteLoginLog(gomock.Any(), "user-1", sessionID).Return(nil),
		)

		assert.NoError(t, s.DeleteSession(context.Background(), "user-1", "current-tok", sessionID))
	})

	t.Run("revocation failure aborts the delete", func(t *testing.T) {
		s, m := newSessionService(t)
		m.logs.EXPECT().GetLoginLog(gomock.Any(), "user-1", sessionID).Return(active, nil)
		m.revoker.EXPECT().Revoke(gomock.Any(), "other-tok").Return(apperror.Revocation(errors.New("redis down")))
		m.logs.EXPECT().DeleteLoginLog(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := s.DeleteSession(context.Background(), "user-1", "current-tok", sessionID)
		assert.Error(t, err)
	})

	t.Run("expired session is deleted without revoking", func(t *testing.T) {
		s, m := newSessionService(t)
		expired := *active
		expired.ExpireAt = time.Now().Add(-time.Hour)
		m.logs.EXPECT().GetLoginLog(gomock.Any(), "user-1", sessionID).Return(&expired, nil)
		m.revoker.EXPECT().Revoke(gomock.Any(), gomock.Any()).Times(0)
		m.logs.EXPECT().DeleteLoginLog(gomock.Any(), "user-1", sessionID).Return(nil)

		assert.NoError(t, s.DeleteSession(context.Background(), "user-1", "current-tok", sessionID))
	})
}

func TestSessionService_LogoutOtherDevices(t *testing.T) {
	sessions := []domain.LoginLog{
		{ID: "a", Token: "current-tok"},
		{ID: "b", Token: "tok-b"},
		{ID: "c", Token: "tok-c"},
	}

	t.Run("revokes every other active session", func(t *testing.T) {
		s, m := newSessionService(t)
		m.logs.EXPECT().ListActiveLoginLogs(gomock.Any(), "user-1", gomock.Any()).Return(sessions, nil)
		gomock.InOrder(
			m.revoker.EXPECT().RevokeMany(gomock.Any(), []string{"tok-b", "tok-c"}).Return(nil),
			m.logs.EXPECT().MarkLoggedOut(gomock.Any(), "user-1", []string{"tok-b", "tok-c"}, gomock.Any()).Return(int64(2), nil),
		)

		n, err := s.LogoutOtherDevices(context.Background(), "user-1", "current-tok")
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("nothing to revoke", func(t *testing.T) {
		s, m := newSessionService(t)
		m.logs.EXPECT().ListActiveLoginLogs(gomock.Any(), "user-1", gomock.Any()).Return(sessions[:1], nil)

		n, err := s.LogoutOtherDevices(context.Background(), "user-1", "current-tok")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("revocation failure leaves rows untouched", func(t *testing.T) {
		s, m := newSessionService(t)
		m.logs.EXPECT().ListActiveLoginLogs(gomock.Any(), "user-1", gomock.Any()).Return(sessions, nil)
		m.revoker.EXPECT().RevokeMany(gomock.Any(), gomock.Any()).Return(apperror.Revocation(errors.New("redis down")))
		m.logs.EXPECT().MarkLoggedOut(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.LogoutOtherDevices(context.Background(), "user-1", "current-tok")
		assert.True(t, apperror.IsKind(err, apperror.KindStorage))
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	s, m := newSessionService(t)
	loggedOut := time.Now().Add(-time.Minute)
	rows := []domain.LoginLog{
		{ID: "a", Token: "current-tok", ExpireAt: time.Now().Add(time.Hour), Device: domain.DeviceInfo{Browser: "Chrome 120"}},
		{ID: "b", Token: "tok-b", ExpireAt: time.Now().Add(time.Hour), LoggedOutAt: &loggedOut},
		{ID: "c", Token: "tok-c", ExpireAt: time.Now().Add(-time.Hour)},
	}
	m.logs.EXPECT().ListLoginLogs(gomock.Any(), "user-1", 20, 0).Return(rows, 3, nil)

	list, err := s.ListSessions(context.Background(), "user-1", "current-tok", 0, 0)
	require.NoError(t, err)

	require.Len(t, list.Items, 3)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, "active", list.Items[0].State)
	assert.True(t, list.Items[0].Current)
	assert.Equal(t, "Chrome 120", list.Items[0].Browser)
	assert.Equal(t, "logged_out", list.Items[1].State)
	assert.False(t, list.Items[1].Current)
	assert.Equal(t, "expired", list.Items[2].State)
}
