package constant

import "time"

const (
	DefaultTokenType = "Bearer"

	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// DefaultViewDebounce is how long a viewer fingerprint is remembered before
	// another watch of the same video counts again.
	DefaultViewDebounce = 30 * time.Second

	// DefaultHotWindowDays is the trailing window, today included, summed for the hot score.
	DefaultHotWindowDays = 7

	// ViewRecordTimeout bounds a background view recording.
	ViewRecordTimeout = 5 * time.Second

	DateLayout = "2006-01-02"
)

const (
	LocalsClaims    = "claims"
	LocalsToken     = "token"
	LocalsUserID    = "user_id"
	LocalsRequestID = "request_id"
)

const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
)

const (
	SortHot      = "hot"
	SortViewRate = "view_rate"
	SortNewest   = "newest"
)

const (
	EventVideoViewed    = "video.viewed"
	EventSessionRevoked = "session.revoked"
)
