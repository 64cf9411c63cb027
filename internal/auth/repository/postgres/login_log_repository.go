package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	"github.com/jackc/pgx/v5"
)

const loginLogColumns = `id, user_id, token, issued_at, expire_at, logged_out_at,
	ip_address, user_agent, browser, os, device, cpu`

func (r *PostgresRepository) CreateLoginLog(ctx context.Context, l *domain.LoginLog) error {
	query := `INSERT INTO login_logs (` + loginLogColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		l.ID, l.UserID, l.Token, l.IssuedAt, l.ExpireAt, l.LoggedOutAt,
		l.IPAddress, l.UserAgent, l.Device.Browser, l.Device.OS, l.Device.Device, l.Device.CPU)
	if err != nil {
		return fmt.Errorf("failed to create login log: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListLoginLogs(ctx context.Context, userID string, limit, offset int) ([]domain.LoginLog, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM login_logs WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count login logs: %w", err)
	}

	query := `SELECT ` + loginLogColumns + ` FROM login_logs
		WHERE user_id = $1
		ORDER BY issued_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list login logs: %w", err)
	}
	logs, err := scanLoginLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *PostgresRepository) ListActiveLoginLogs(ctx context.Context, userID string, now time.Time) ([]domain.LoginLog, error) {
	query := `SELECT ` + loginLogColumns + ` FROM login_logs
		WHERE user_id = $1 AND logged_out_at IS NULL AND expire_at > $2
		ORDER BY issued_at DESC`
	rows, err := r.db.Query(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list active login logs: %w", err)
	}
	return scanLoginLogs(rows)
}

func (r *PostgresRepository) GetLoginLog(ctx context.Context, userID, id string) (*domain.LoginLog, error) {
	query := `SELECT ` + loginLogColumns + ` FROM login_logs WHERE id = $1 AND user_id = $2`
	l, err := scanLoginLog(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get login log: %w", err)
	}
	return l, nil
}

// MarkLoggedOut stamps logged_out_at on the user's rows holding tokens. Rows already
// logged out keep their original timestamp.
func (r *PostgresRepository) MarkLoggedOut(ctx context.Context, userID string, tokens []string, at time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE login_logs SET logged_out_at = $3
		WHERE user_id = $1 AND token = ANY($2) AND logged_out_at IS NULL
	`, userID, tokens, at)
	if err != nil {
		return 0, fmt.Errorf("failed to mark login logs logged out: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *PostgresRepository) DeleteLoginLog(ctx context.Context, userID, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM login_logs WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete login log: %w", err)
	}
	return nil
}

func scanLoginLog(row pgx.Row) (*domain.LoginLog, error) {
	var l domain.LoginLog
	err := row.Scan(
		&l.ID, &l.UserID, &l.Token, &l.IssuedAt, &l.ExpireAt, &l.LoggedOutAt,
		&l.IPAddress, &l.UserAgent, &l.Device.Browser, &l.Device.OS, &l.Device.Device, &l.Device.CPU,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLoginLogs(rows pgx.Rows) ([]domain.LoginLog, error) {
	defer rows.Close()

	var logs []domain.LoginLog
	for rows.Next() {
		l, err := scanLoginLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan login log: %w", err)
		}
		logs = append(logs, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate login logs: %w", err)
	}
	return logs, nil
}
