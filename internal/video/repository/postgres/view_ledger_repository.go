package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
)

// incrementViews bumps the day's ledger row and the lifetime counter in one statement.
// Selecting the ledger row from videos keeps a missing video from raising a foreign key error.
const incrementViews = `
	WITH ledger AS (
		INSERT INTO video_views (video_id, day, views)
		SELECT id, $2::date, 1 FROM videos WHERE id = $1
		ON CONFLICT (video_id, day) DO UPDATE SET views = video_views.views + 1
	)
	UPDATE videos SET views = views + 1 WHERE id = $1`

func (r *PostgresRepository) IncrementViews(ctx context.Context, videoID string, day time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, incrementViews, videoID, day)
	if err != nil {
		return false, fmt.Errorf("failed to increment views: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepository) SumViewsSince(ctx context.Context, videoID string, after time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(views), 0)::bigint FROM video_views WHERE video_id = $1 AND day > $2::date
	`, videoID, after).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum views: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) ViewsByBucket(ctx context.Context, videoID, format string, from *time.Time) ([]domain.ViewBucket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(day::timestamp, $2::text) AS bucket, SUM(views)::bigint
		FROM video_views
		WHERE video_id = $1 AND ($3::date IS NULL OR day >= $3::date)
		GROUP BY bucket
		ORDER BY bucket
	`, videoID, format, from)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket views: %w", err)
	}
	defer rows.Close()

	buckets := []domain.ViewBucket{}
	for rows.Next() {
		var b domain.ViewBucket
		if err := rows.Scan(&b.Date, &b.Views); err != nil {
			return nil, fmt.Errorf("failed to scan view bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
