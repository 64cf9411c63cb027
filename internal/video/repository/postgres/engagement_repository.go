package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
)

func (r *PostgresRepository) AddComment(ctx context.Context, c *domain.Comment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO comments (id, video_id, user_id, content, created_at) VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.VideoID, c.UserID, c.Content, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListComments(ctx context.Context, videoID string, limit, offset int) ([]domain.Comment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, video_id, user_id, content, created_at FROM comments
		WHERE video_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, videoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.VideoID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// UpsertReaction replaces any earlier reaction by the same user, so reacting twice never conflicts.
func (r *PostgresRepository) UpsertReaction(ctx context.Context, videoID, userID string, reaction domain.Reaction, at time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO video_reactions (video_id, user_id, reaction, reacted_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (video_id, user_id) DO UPDATE SET reaction = EXCLUDED.reaction, reacted_at = EXCLUDED.reacted_at
	`, videoID, userID, string(reaction), at)
	if err != nil {
		return fmt.Errorf("failed to upsert reaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteReaction(ctx context.Context, videoID, userID string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM video_reactions WHERE video_id = $1 AND user_id = $2`, videoID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ReactionCounts(ctx context.Context, videoID string) (domain.ReactionCounts, error) {
	var counts domain.ReactionCounts
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FILTER (WHERE reaction = 'like'), COUNT(*) FILTER (WHERE reaction = 'dislike')
		FROM video_reactions WHERE video_id = $1
	`, videoID).Scan(&counts.Likes, &counts.Dislikes)
	if err != nil {
		return counts, fmt.Errorf("failed to count reactions: %w", err)
	}
	return counts, nil
}

func (r *PostgresRepository) CommentsByBucket(ctx context.Context, videoID, format string, from *time.Time) ([]domain.CommentBucket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(created_at AT TIME ZONE 'UTC', $2::text) AS bucket, COUNT(*)
		FROM comments
		WHERE video_id = $1 AND ($3::timestamptz IS NULL OR created_at >= $3::timestamptz)
		GROUP BY bucket
		ORDER BY bucket
	`, videoID, format, from)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket comments: %w", err)
	}
	defer rows.Close()

	buckets := []domain.CommentBucket{}
	for rows.Next() {
		var b domain.CommentBucket
		if err := rows.Scan(&b.Date, &b.Comments); err != nil {
			return nil, fmt.Errorf("failed to scan comment bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (r *PostgresRepository) ReactionsByBucket(ctx context.Context, videoID, format string, from *time.Time) ([]domain.ReactionBucket, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(reacted_at AT TIME ZONE 'UTC', $2::text) AS bucket,
		       COUNT(*) FILTER (WHERE reaction = 'like'),
		       COUNT(*) FILTER (WHERE reaction = 'dislike')
		FROM video_reactions
		WHERE video_id = $1 AND ($3::timestamptz IS NULL OR reacted_at >= $3::timestamptz)
		GROUP BY bucket
		ORDER BY bucket
	`, videoID, format, from)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket reactions: %w", err)
	}
	defer rows.Close()

	buckets := []domain.ReactionBucket{}
	for rows.Next() {
		var b domain.ReactionBucket
		if err := rows.Scan(&b.Date, &b.Likes, &b.Dislikes); err != nil {
			return nil, fmt.Errorf("failed to scan reaction bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}
