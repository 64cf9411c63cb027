package service

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
	"github.com/debugg-er/zootube-api-sub000/internal/video/dto"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/debugg-er/zootube-api-sub000/pkg/paging"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type VideoConfig struct {
	HotWindowDays    int
	MediaServiceURL  string
	StaticServiceURL string
}

type VideoService struct {
	videos     domain.VideoRepository
	ledger     domain.ViewLedger
	engagement domain.EngagementRepository
	cfg        VideoConfig
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewVideoService(videos domain.VideoRepository, ledger domain.ViewLedger, engagement domain.EngagementRepository, cfg VideoConfig, log logrus.FieldLogger) *VideoService {
	if cfg.HotWindowDays <= 0 {
		cfg.HotWindowDays = constant.DefaultHotWindowDays
	}
	return &VideoService{
		videos:     videos,
		ledger:     ledger,
		engagement: engagement,
		cfg:        cfg,
		log:        log.WithField("component", "videos"),
		now:        time.Now,
	}
}

func (s *VideoService) Create(ctx context.Context, userID string, input dto.CreateVideoInput) (*dto.VideoOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	video := &domain.Video{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		VideoPath:     input.VideoPath,
		ThumbnailPath: input.ThumbnailPath,
		Duration:      input.Duration,
		Privacy:       input.Privacy,
		UploadedAt:    s.now().UTC(),
	}
	if err := s.videos.Create(ctx, video); err != nil {
		return nil, storageErr("create video", err)
	}

	s.log.WithFields(logrus.Fields{"video_id": video.ID, "user_id": userID}).Info("video created")
	out := s.toOutput(domain.RankedVideo{Video: *video})
	return &out, nil
}

// Get returns the video with its current hot score and reaction counts. Private videos
// are reported as missing to anyone but their owner.
func (s *VideoService) Get(ctx context.Context, viewerID, videoID string) (*dto.VideoOutput, error) {
	video, err := s.visibleVideo(ctx, viewerID, videoID)
	if err != nil {
		return nil, err
	}

	hot, err := s.ledger.SumViewsSince(ctx, video.ID, domain.HotWindowStart(s.now(), s.cfg.HotWindowDays))
	if err != nil {
		return nil, storageErr("sum recent views", err)
	}
	counts, err := s.engagement.ReactionCounts(ctx, video.ID)
	if err != nil {
		return nil, storageErr("count reactions", err)
	}

	out := s.toOutput(domain.RankedVideo{Video: *video, HotScore: hot, ViewRate: domain.ViewRate(video, s.now())})
	out.Likes = counts.Likes
	out.Dislikes = counts.Dislikes
	return &out, nil
}

func (s *VideoService) List(ctx context.Context, input dto.ListInput) (*dto.VideoList, error) {
	page, limit, offset := paging.Normalize(input.Page, input.Limit)
	now := s.now()

	rows, err := s.videos.List(ctx, domain.ListQuery{
		Sort:     input.Sort,
		HotSince: domain.HotWindowStart(now, s.cfg.HotWindowDays),
		Now:      now,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, storageErr("list videos", err)
	}
	return &dto.VideoList{Items: s.toOutputs(rows), Page: page, Limit: limit}, nil
}

// Search matches title and description. An authenticated viewer also sees their own private videos.
func (s *VideoService) Search(ctx context.Context, viewerID string, input dto.SearchInput) (*dto.VideoList, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, apperror.Validation("q is required")
	}
	page, limit, offset := paging.Normalize(input.Page, input.Limit)
	now := s.now()

	rows, err := s.videos.Search(ctx, domain.SearchQuery{
		Query:    query,
		ViewerID: viewerID,
		HotSince: domain.HotWindowStart(now, s.cfg.HotWindowDays),
		Now:      now,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, storageErr("search videos", err)
	}
	return &dto.VideoList{Items: s.toOutputs(rows), Page: page, Limit: limit}, nil
}

// HotScore sums the ledger over the trailing window, today included.
func (s *VideoService) HotScore(ctx context.Context, videoID string) (int64, error) {
	score, err := s.ledger.SumViewsSince(ctx, videoID, domain.HotWindowStart(s.now(), s.cfg.HotWindowDays))
	if err != nil {
		return 0, storageErr("sum recent views", err)
	}
	return score, nil
}

func (s *VideoService) AddComment(ctx context.Context, userID, videoID string, input dto.CommentInput) (*dto.CommentOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.visibleVideo(ctx, userID, videoID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserID:    userID,
		Content:   input.Content,
		CreatedAt: s.now().UTC(),
	}
	if err := s.engagement.AddComment(ctx, comment); err != nil {
		return nil, storageErr("add comment", err)
	}
	out := toCommentOutput(comment)
	return &out, nil
}

func (s *VideoService) ListComments(ctx context.Context, viewerID, videoID string, page, limit int) (*dto.CommentList, error) {
	if _, err := s.visibleVideo(ctx, viewerID, videoID); err != nil {
		return nil, err
	}
	page, limit, offset := paging.Normalize(page, limit)

	comments, err := s.engagement.ListComments(ctx, videoID, limit, offset)
	if err != nil {
		return nil, storageErr("list comments", err)
	}
	items := make([]dto.CommentOutput, 0, len(comments))
	for i := range comments {
		items = append(items, toCommentOutput(&comments[i]))
	}
	return &dto.CommentList{Items: items, Page: page, Limit: limit}, nil
}

// React sets the user's reaction, replacing any previous one.
func (s *VideoService) React(ctx context.Context, userID, videoID string, input dto.ReactionInput) error {
	reaction := domain.Reaction(input.Reaction)
	if !reaction.Valid() {
		return apperror.ErrInvalidReaction
	}
	if _, err := s.visibleVideo(ctx, userID, videoID); err != nil {
		return err
	}
	if err := s.engagement.UpsertReaction(ctx, videoID, userID, reaction, s.now().UTC()); err != nil {
		return storageErr("save reaction", err)
	}
	return nil
}

func (s *VideoService) Unreact(ctx context.Context, userID, videoID string) error {
	if _, err := s.visibleVideo(ctx, userID, videoID); err != nil {
		return err
	}
	if err := s.engagement.DeleteReaction(ctx, videoID, userID); err != nil {
		return storageErr("delete reaction", err)
	}
	return nil
}

func (s *VideoService) visibleVideo(ctx context.Context, viewerID, videoID string) (*domain.Video, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, apperror.ErrVideoNotFound
	}
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, storageErr("get video", err)
	}
	if video == nil || !video.VisibleTo(viewerID) {
		return nil, apperror.ErrVideoNotFound
	}
	return video, nil
}

func (s *VideoService) toOutputs(rows []domain.RankedVideo) []dto.VideoOutput {
	items := make([]dto.VideoOutput, 0, len(rows))
	for _, row := range rows {
		items = append(items, s.toOutput(row))
	}
	return items
}

func (s *VideoService) toOutput(v domain.RankedVideo) dto.VideoOutput {
	return dto.VideoOutput{
		ID:           v.ID,
		UserID:       v.UserID,
		Title:        v.Title,
		Description:  v.Description,
		VideoURL:     joinURL(s.cfg.MediaServiceURL, v.VideoPath),
		ThumbnailURL: joinURL(s.cfg.StaticServiceURL, v.ThumbnailPath),
		Duration:     v.Duration,
		Privacy:      v.Privacy,
		Views:        v.Views,
		HotScore:     v.HotScore,
		ViewRate:     v.ViewRate,
		UploadedAt:   v.UploadedAt,
	}
}

func toCommentOutput(c *domain.Comment) dto.CommentOutput {
	return dto.CommentOutput{
		ID:        c.ID,
		VideoID:   c.VideoID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// joinURL prefixes path with base. An empty path stays empty, and an unset base leaves the path as stored.
func joinURL(base, path string) string {
	if path == "" || base == "" {
		return path
	}
	joined, err := url.JoinPath(base, path)
	if err != nil {
		return path
	}
	return joined
}

func storageErr(op string, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Storage(op, err)
}
