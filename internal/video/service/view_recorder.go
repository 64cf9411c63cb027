package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/internal/events"
	"github.com/debugg-er/zootube-api-sub000/internal/metrics"
	"github.com/debugg-er/zootube-api-sub000/internal/video/domain"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
	"github.com/sirupsen/logrus"
)

type VideoViewedEvent struct {
	VideoID string `json:"video_id"`
	Day     string `json:"day"`
}

// Fingerprint identifies one viewer of one video for debouncing.
func Fingerprint(ip, userAgent, videoID string) string {
	sum := sha256.Sum256([]byte(ip + "|" + userAgent + "|" + videoID))
	return hex.EncodeToString(sum[:])
}

// ViewRecorder counts watch events. A fingerprint counts at most once per debounce window;
// each counted view bumps the lifetime counter and today's ledger row in one statement.
type ViewRecorder struct {
	markers  domain.ViewMarkerStore
	ledger   domain.ViewLedger
	events   events.Writer
	metrics  *metrics.Recorder
	log      logrus.FieldLogger
	debounce time.Duration
	timeout  time.Duration
	now      func() time.Time
	inflight sync.WaitGroup
}

func NewViewRecorder(markers domain.ViewMarkerStore, ledger domain.ViewLedger, ev events.Writer, m *metrics.Recorder, debounce time.Duration, log logrus.FieldLogger) *ViewRecorder {
	if ev == nil {
		ev = events.NoopWriter{}
	}
	if debounce <= 0 {
		debounce = constant.DefaultViewDebounce
	}
	return &ViewRecorder{
		markers:  markers,
		ledger:   ledger,
		events:   ev,
		metrics:  m,
		log:      log.WithField("component", "views"),
		debounce: debounce,
		timeout:  constant.ViewRecordTimeout,
		now:      time.Now,
	}
}

// RecordView reports whether the watch was counted. A marker store failure is returned
// and the view is not counted.
func (r *ViewRecorder) RecordView(ctx context.Context, videoID, fingerprint string) (bool, error) {
	fresh, err := r.markers.MarkIfAbsent(ctx, fingerprint, r.debounce)
	if err != nil {
		r.metrics.ViewRecordFailed()
		return false, storageErr("mark view", err)
	}
	if !fresh {
		r.metrics.ViewDebounced()
		return false, nil
	}

	day := domain.Day(r.now())
	found, err := r.ledger.IncrementViews(ctx, videoID, day)
	if err != nil {
		r.metrics.ViewRecordFailed()
		return false, storageErr("increment views", err)
	}
	if !found {
		return false, apperror.ErrVideoNotFound
	}

	r.metrics.ViewRecorded()
	event := VideoViewedEvent{VideoID: videoID, Day: day.Format(constant.DateLayout)}
	if err := r.events.Write(ctx, constant.EventVideoViewed, []byte(videoID), event); err != nil {
		r.log.WithError(err).Warn("failed to publish view event")
	}
	return true, nil
}

// RecordAsync records the view in the background, detached from the request. Failures
// are logged only.
func (r *ViewRecorder) RecordAsync(videoID, fingerprint string) {
	r.inflight.Add(1)
	go func() {
		defer r.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if _, err := r.RecordView(ctx, videoID, fingerprint); err != nil {
			r.log.WithError(err).WithField("video_id", videoID).Error("failed to record view")
		}
	}()
}

// Wait blocks until every recording started by RecordAsync has finished.
func (r *ViewRecorder) Wait() {
	r.inflight.Wait()
}
