package domain

//go:generate mockgen -destination=../../mocks/mock_video_repository.go -package=mocks github.com/debugg-er/zootube-api-sub000/internal/video/domain VideoRepository,ViewLedger,EngagementRepository,ViewMarkerStore

import (
	"context"
	"time"
)

type ListQuery struct {
	Sort     string
	HotSince time.Time
	Now      time.Time
	Limit    int
	Offset   int
}

type SearchQuery struct {
	Query    string
	ViewerID string
	HotSince time.Time
	Now      time.Time
	Limit    int
	Offset   int
}

// VideoRepository lookups return (nil, nil) when no row matches.
type VideoRepository interface {
	Create(ctx context.Context, video *Video) error
	GetByID(ctx context.Context, id string) (*Video, error)
	List(ctx context.Context, q ListQuery) ([]RankedVideo, error)
	Search(ctx context.Context, q SearchQuery) ([]RankedVideo, error)
}

// ViewLedger keeps the lifetime counter and the per-day ledger in step.
type ViewLedger interface {
	// IncrementViews adds one view to both counters atomically. It reports false when
	// the video does not exist.
	IncrementViews(ctx context.Context, videoID string, day time.Time) (bool, error)
	SumViewsSince(ctx context.Context, videoID string, after time.Time) (int64, error)
	ViewsByBucket(ctx context.Context, videoID, format string, from *time.Time) ([]ViewBucket, error)
}

type EngagementRepository interface {
	AddComment(ctx context.Context, comment *Comment) error
	ListComments(ctx context.Context, videoID string, limit, offset int) ([]Comment, error)
	UpsertReaction(ctx context.Context, videoID, userID string, reaction Reaction, at time.Time) error
	DeleteReaction(ctx context.Context, videoID, userID string) error
	ReactionCounts(ctx context.Context, videoID string) (ReactionCounts, error)
	CommentsByBucket(ctx context.Context, videoID, format string, from *time.Time) ([]CommentBucket, error)
	ReactionsByBucket(ctx context.Context, videoID, format string, from *time.Time) ([]ReactionBucket, error)
}

// ViewMarkerStore remembers recent viewer fingerprints.
type ViewMarkerStore interface {
	// MarkIfAbsent sets the marker for window and reports whether it was newly set.
	MarkIfAbsent(ctx context.Context, fingerprint string, window time.Duration) (bool, error)
}
