package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	repo "github.com/debugg-er/zootube-api-sub000/internal/auth/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loginLogColumns = []string{"id", "user_id", "token", "issued_at", "expire_at", "logged_out_at",
	"ip_address", "user_agent", "browser", "os", "device", "cpu"}

func TestCreateLoginLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()
	l := &domain.LoginLog{
		ID: "log-1", UserID: "user-1", Token: "tok", IssuedAt: now, ExpireAt: now.Add(time.Hour),
		IPAddress: "1.2.3.4", UserAgent: "ua",
		Device: domain.DeviceInfo{Browser: "Chrome 120", OS: "Linux", Device: "desktop", CPU: "amd64"},
	}

	mock.ExpectExec("INSERT INTO login_logs").
		WithArgs(l.ID, l.UserID, l.Token, l.IssuedAt, l.ExpireAt, l.LoggedOutAt,
			l.IPAddress, l.UserAgent, "Chrome 120", "Linux", "desktop", "amd64").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.CreateLoginLog(context.Background(), l))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLoginLogs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()
	loggedOut := now.Add(-time.Minute)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("ORDER BY issued_at DESC").
		WithArgs("user-1", 20, 0).
		WillReturnRows(pgxmock.NewRows(loginLogColumns).
			AddRow("log-2", "user-1", "tok-2", now, now.Add(time.Hour), nil, "", "", "", "", "", "").
			AddRow("log-1", "user-1", "tok-1", now.Add(-time.Hour), now.Add(time.Hour), &loggedOut, "", "", "", "", "", ""))

	logs, total, err := r.ListLoginLogs(context.Background(), "user-1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, logs, 2)
	assert.Equal(t, "log-2", logs[0].ID)
	assert.Nil(t, logs[0].LoggedOutAt)
	require.NotNil(t, logs[1].LoggedOutAt)
	assert.Equal(t, loggedOut, *logs[1].LoggedOutAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListLoginLogs_CountError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	mock.ExpectQuery("SELECT COUNT").WithArgs("user-1").WillReturnError(fmt.Errorf("db error"))

	_, _, err = r.ListLoginLogs(context.Background(), "user-1", 20, 0)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveLoginLogs(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	now := time.Now()

	mock.ExpectQuery("logged_out_at IS NULL AND expire_at >").
		WithArgs("user-1", now).
		WillReturnRows(pgxmock.NewRows(loginLogColumns).
			AddRow("log-1", "user-1", "tok-1", now, now.Add(time.Hour), nil, "", "", "", "", "", ""))

	logs, err := r.ListActiveLoginLogs(context.Background(), "user-1", now)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "tok-1", logs[0].Token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLoginLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("FROM login_logs WHERE id").
			WithArgs("log-1", "user-1").
			WillReturnRows(pgxmock.NewRows(loginLogColumns).
				AddRow("log-1", "user-1", "tok-1", now, now.Add(time.Hour), nil, "", "", "", "", "", ""))

		l, err := r.GetLoginLog(ctx, "user-1", "log-1")
		require.NoError(t, err)
		assert.Equal(t, "tok-1", l.Token)
	})

	t.Run("other user's row is not visible", func(t *testing.T) {
		mock.ExpectQuery("FROM login_logs WHERE id").
			WithArgs("log-1", "user-2").
			WillReturnError(pgx.ErrNoRows)

		l, err := r.GetLoginLog(ctx, "user-2", "log-1")
		require.NoError(t, err)
		assert.Nil(t, l)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkLoggedOut(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	at := time.Now()
	tokens := []string{"tok-1", "tok-2"}

	mock.ExpectExec("UPDATE login_logs SET logged_out_at").
		WithArgs("user-1", tokens, at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	n, err := r.MarkLoggedOut(context.Background(), "user-1", tokens, at)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteLoginLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)

	mock.ExpectExec("DELETE FROM login_logs").
		WithArgs("log-1", "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM login_logs").
		WithArgs("log-2", "user-1").
		WillReturnError(fmt.Errorf("db error"))

	assert.NoError(t, r.DeleteLoginLog(context.Background(), "user-1", "log-1"))
	assert.Error(t, r.DeleteLoginLog(context.Background(), "user-1", "log-2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
