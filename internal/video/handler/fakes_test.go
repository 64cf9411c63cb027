package handler_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
)

// memStore stands in for the postgres repository: videos, the view ledger and engagement.
type memStore struct {
	mu        sync.Mutex
	videos    map[string]*domain.Video
	days      map[string]map[time.Time]int64
	comments  []domain.Comment
	reactions map[string]map[string]domain.Reaction
}

func newMemStore() *memStore {
	return &memStore{
		videos:    map[string]*domain.Video{},
		days:      map[string]map[time.Time]int64{},
		reactions: map[string]map[string]domain.Reaction{},
	}
}

func (s *memStore) Create(_ context.Context, v *domain.Video) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *v
	s.videos[v.ID] = &cp
	s.days[v.ID] = map[time.Time]int64{}
	return nil
}

func (s *memStore) GetByID(_ context.Context, id string) (*domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (s *memStore) List(_ context.Context, q domain.ListQuery) ([]domain.RankedVideo, error) {
	return s.ranked(q.HotSince, q.Now, func(v *domain.Video) bool { return v.Privacy == "public" }), nil
}

func (s *memStore) Search(_ context.Context, q domain.SearchQuery) ([]domain.RankedVideo, error) {
	needle := strings.ToLower(q.Query)
	return s.ranked(q.HotSince, q.Now, func(v *domain.Video) bool {
		text := strings.ToLower(v.Title + " " + v.Description)
		return strings.Contains(text, needle) && v.VisibleTo(q.ViewerID)
	}), nil
}

func (s *memStore) ranked(since, now time.Time, keep func(*domain.Video) bool) []domain.RankedVideo {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.RankedVideo
	for _, v := range s.videos {
		if !keep(v) {
			continue
		}
		out = append(out, domain.RankedVideo{Video: *v, HotScore: s.sumLocked(v.ID, since), ViewRate: domain.ViewRate(v, now)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HotScore > out[j].HotScore })
	return out
}

func (s *memStore) IncrementViews(_ context.Context, videoID string, day time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.videos[videoID]
	if !ok {
		return false, nil
	}
	v.Views++
	s.days[videoID][day]++
	return true, nil
}

func (s *memStore) SumViewsSince(_ context.Context, videoID string, after time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sumLocked(videoID, after), nil
}

func (s *memStore) sumLocked(videoID string, after time.Time) int64 {
	var sum int64
	for day, n := range s.days[videoID] {
		if day.After(after) {
			sum += n
		}
	}
	return sum
}

func (s *memStore) ViewsByBucket(_ context.Context, videoID, _ string, _ *time.Time) ([]domain.ViewBucket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.ViewBucket
	for day, n := range s.days[videoID] {
		out = append(out, domain.ViewBucket{Date: day.Format("2006-01-02"), Views: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *memStore) AddComment(_ context.Context, c *domain.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.comments = append(s.comments, *c)
	return nil
}

func (s *memStore) ListComments(_ context.Context, videoID string, limit, offset int) ([]domain.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Comment
	for _, c := range s.comments {
		if c.VideoID == videoID {
			out = append(out, c)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) UpsertReaction(_ context.Context, videoID, userID string, r domain.Reaction, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reactions[videoID] == nil {
		s.reactions[videoID] = map[string]domain.Reaction{}
	}
	s.reactions[videoID][userID] = r
	return nil
}

func (s *memStore) DeleteReaction(_ context.Context, videoID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reactions[videoID], userID)
	return nil
}

func (s *memStore) ReactionCounts(_ context.Context, videoID string) (domain.ReactionCounts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var counts domain.ReactionCounts
	for _, r := range s.reactions[videoID] {
		if r == domain.ReactionLike {
			counts.Likes++
		} else {
			counts.Dislikes++
		}
	}
	return counts, nil
}

func (s *memStore) CommentsByBucket(context.Context, string, string, *time.Time) ([]domain.CommentBucket, error) {
	return nil, nil
}

func (s *memStore) ReactionsByBucket(context.Context, string, string, *time.Time) ([]domain.ReactionBucket, error) {
	return nil, nil
}

func (s *memStore) lifetimeViews(videoID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videos[videoID].Views
}
