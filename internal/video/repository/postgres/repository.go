package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/debugg-er/zootube-api-sub000/db"
	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/jackc/pgx/v5"
)

// PostgresRepository implements the video, view ledger and engagement repositories.
type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(db db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

var (
	_ domain.VideoRepository      = (*PostgresRepository)(nil)
	_ domain.ViewLedger           = (*PostgresRepository)(nil)
	_ domain.EngagementRepository = (*PostgresRepository)(nil)
)

const videoColumns = `v.id, v.user_id, v.title, v.description, v.video_path, v.thumbnail_path,
	v.duration, v.privacy, v.views, v.uploaded_at`

// rankedSelect computes both scores for every row: $1 is the hot window's exclusive
// start day, $2 is the current time.
const rankedSelect = `SELECT ` + videoColumns + `,
	COALESCE(h.recent, 0)::bigint AS hot_score,
	v.views::float8 / (GREATEST(FLOOR(EXTRACT(EPOCH FROM ($2::timestamptz - v.uploaded_at)) / 86400), 0) + 1) AS view_rate
	FROM videos v
	LEFT JOIN (
		SELECT video_id, SUM(views) AS recent FROM video_views WHERE day > $1::date GROUP BY video_id
	) h ON h.video_id = v.id`

var listOrders = map[string]string{
	constant.SortHot:      `hot_score DESC, v.uploaded_at DESC`,
	constant.SortViewRate: `view_rate DESC, v.uploaded_at DESC`,
	constant.SortNewest:   `v.uploaded_at DESC`,
}

func (r *PostgresRepository) Create(ctx context.Context, v *domain.Video) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO videos (id, user_id, title, description, video_path, thumbnail_path, duration, privacy, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, v.ID, v.UserID, v.Title, v.Description, v.VideoPath, v.ThumbnailPath, v.Duration, v.Privacy, v.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos v WHERE v.id = $1`

	var v domain.Video
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.UserID, &v.Title, &v.Description, &v.VideoPath, &v.ThumbnailPath,
		&v.Duration, &v.Privacy, &v.Views, &v.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}
	return &v, nil
}

// List returns public videos in the requested order. Unknown sorts fall back to hot.
func (r *PostgresRepository) List(ctx context.Context, q domain.ListQuery) ([]domain.RankedVideo, error) {
	order, ok := listOrders[q.Sort]
	if !ok {
		order = listOrders[constant.SortHot]
	}
	query := rankedSelect + `
		WHERE v.privacy = 'public'
		ORDER BY ` + order + `
		LIMIT $3 OFFSET $4`

	rows, err := r.db.Query(ctx, query, q.HotSince, q.Now, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	return scanRanked(rows)
}

// Search matches title or description. The viewer also sees their own private videos.
func (r *PostgresRepository) Search(ctx context.Context, q domain.SearchQuery) ([]domain.RankedVideo, error) {
	query := rankedSelect + `
		WHERE (v.title ILIKE $3 OR v.description ILIKE $3)
		  AND (v.privacy = 'public' OR v.user_id::text = $4)
		ORDER BY v.uploaded_at DESC
		LIMIT $5 OFFSET $6`

	rows, err := r.db.Query(ctx, query, q.HotSince, q.Now, likePattern(q.Query), q.ViewerID, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	return scanRanked(rows)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

func scanRanked(rows pgx.Rows) ([]domain.RankedVideo, error) {
	defer rows.Close()

	videos := []domain.RankedVideo{}
	for rows.Next() {
		var v domain.RankedVideo
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.Title, &v.Description, &v.VideoPath, &v.ThumbnailPath,
			&v.Duration, &v.Privacy, &v.Views, &v.UploadedAt, &v.HotScore, &v.ViewRate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate videos: %w", err)
	}
	return videos, nil
}
