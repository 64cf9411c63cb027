package service

import (
	"context"
	"strings"
	"time"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
	"github.com/debugg-er/zootube-api-sub000/internal/video/dto"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/google/uuid"
)

type AnalyticsService struct {
	videos     domain.VideoRepository
	ledger     domain.ViewLedger
	engagement domain.EngagementRepository
}

func NewAnalyticsService(videos domain.VideoRepository, ledger domain.ViewLedger, engagement domain.EngagementRepository) *AnalyticsService {
	return &AnalyticsService{videos: videos, ledger: ledger, engagement: engagement}
}

// Analysis returns the owner's view, comment and reaction series bucketed by unit.
// Buckets with no activity are absent.
func (s *AnalyticsService) Analysis(ctx context.Context, requesterID, videoID string, input dto.AnalysisInput) (*dto.AnalysisOutput, error) {
	unit := domain.BucketUnit(strings.ToLower(strings.TrimSpace(input.Unit)))
	if unit == "" {
		unit = domain.UnitDay
	}
	format, ok := unit.Format()
	if !ok {
		return nil, apperror.ErrInvalidBucketUnit
	}

	var from *time.Time
	if input.From != "" {
		t, err := time.ParseInLocation(constant.DateLayout, input.From, time.UTC)
		if err != nil {
			return nil, apperror.Validation("from must be a date in YYYY-MM-DD format")
		}
		from = &t
	}

	if _, err := uuid.Parse(videoID); err != nil {
		return nil, apperror.ErrVideoNotFound
	}
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storageErr("get video", err)
	}
	if video == nil {
		return nil, apperror.ErrVideoNotFound
	}
	if video.UserID != requesterID {
		return nil, apperror.ErrNotVideoOwner
	}

	views, err := s.ledger.ViewsByBucket(ctx, videoID, format, from)
	if err != nil {
		return nil, storageErr("views by bucket", err)
	}
	comments, err := s.engagement.CommentsByBucket(ctx, videoID, format, from)
	if err != nil {
		return nil, storageErr("comments by bucket", err)
	}
	reactions, err := s.engagement.ReactionsByBucket(ctx, videoID, format, from)
	if err != nil {
		return nil, storageErr("reactions by bucket", err)
	}

	out := &dto.AnalysisOutput{
		Views:          make([]dto.ViewPoint, 0, len(views)),
		Comments:       make([]dto.CommentPoint, 0, len(comments)),
		VideoReactions: make([]dto.ReactionPoint, 0, len(reactions)),
	}
	for _, b := range views {
		out.Views = append(out.Views, dto.ViewPoint{Date: b.Date, Views: b.Views})
	}
	for _, b := range comments {
		out.Comments = append(out.Comments, dto.CommentPoint{Date: b.Date, Comments: b.Comments})
	}
	for _, b := range reactions {
		out.VideoReactions = append(out.VideoReactions, dto.ReactionPoint{Date: b.Date, Likes: b.Likes, Dislikes: b.Dislikes})
	}
	return out, nil
}
