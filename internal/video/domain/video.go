package domain

import (
	"time"

	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
)

type Video struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	VideoPath     string
	ThumbnailPath string
	Duration      int
	Privacy       string
	Views         int64
	UploadedAt    time.Time
}

// RankedVideo is a listing row with the scores it can be sorted by.
type RankedVideo struct {
	Video
	HotScore int64
	ViewRate float64
}

func (v *Video) VisibleTo(viewerID string) bool {
	return v.Privacy == constant.PrivacyPublic || (viewerID != "" && v.UserID == viewerID)
}

// ViewRate is lifetime views divided by whole days since upload plus one.
func ViewRate(v *Video, now time.Time) float64 {
	days := int64(now.Sub(v.UploadedAt) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}
	return float64(v.Views) / float64(days+1)
}

// Day is the UTC calendar day t falls on, which is the ledger's bucket key.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HotWindowStart is the exclusive lower bound for the hot score: ledger days strictly
// after it, today included, count towards the score.
func HotWindowStart(now time.Time, windowDays int) time.Time {
	return Day(now).AddDate(0, 0, -windowDays)
}

type Comment struct {
	ID        string
	VideoID   string
	UserID    string
	Content   string
	CreatedAt time.Time
}

type Reaction string

const (
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

func (r Reaction) Valid() bool {
	return r == ReactionLike || r == ReactionDislike
}

type ReactionCounts struct {
	Likes    int64
	Dislikes int64
}

type BucketUnit string

const (
	UnitDay   BucketUnit = "day"
	UnitMonth BucketUnit = "month"
	UnitYear  BucketUnit = "year"
)

var bucketFormats = map[BucketUnit]string{
	UnitDay:   "YYYY-MM-DD",
	UnitMonth: "YYYY-MM",
	UnitYear:  "YYYY",
}

// Format returns the to_char pattern for the unit.
func (u BucketUnit) Format() (string, bool) {
	f, ok := bucketFormats[u]
	return f, ok
}

type ViewBucket struct {
	Date  string
	Views int64
}

type CommentBucket struct {
	Date     string
	Comments int64
}

type ReactionBucket struct {
	Date     string
	Likes    int64
	Dislikes int64
}
