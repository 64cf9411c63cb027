package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
)

// memLedger is a ViewLedger whose increment holds one lock for both counters, like the
// single SQL statement it stands in for.
type memLedger struct {
	mu       sync.Mutex
	lifetime map[string]int64
	days     map[string]map[time.Time]int64
}

func newMemLedger(videoIDs ...string) *memLedger {
	l := &memLedger{lifetime: map[string]int64{}, days: map[string]map[time.Time]int64{}}
	for _, id := range videoIDs {
		l.lifetime[id] = 0
		l.days[id] = map[time.Time]int64{}
	}
	return l
}

func (l *memLedger) IncrementViews(_ context.Context, videoID string, day time.Time) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.lifetime[videoID]; !ok {
		return false, nil
	}
	l.lifetime[videoID]++
	l.days[videoID][day]++
	return true, nil
}

func (l *memLedger) SumViewsSince(_ context.Context, videoID string, after time.Time) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var sum int64
	for day, n := range l.days[videoID] {
		if day.After(after) {
			sum += n
		}
	}
	return sum, nil
}

func (l *memLedger) ViewsByBucket(context.Context, string, string, *time.Time) ([]domain.ViewBucket, error) {
	return nil, nil
}

func (l *memLedger) views(videoID string) (lifetime, ledger int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range l.days[videoID] {
		ledger += n
	}
	return l.lifetime[videoID], ledger
}
