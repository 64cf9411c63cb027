package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	FullName     string
	Blocked      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DeviceInfo struct {
	Browser string
	OS      string
	Device  string
	CPU     string
}

// LoginLog tracks one issued session token. It is only mutated to set LoggedOutAt.
type LoginLog struct {
	ID          string
	UserID      string
	Token       string
	IssuedAt    time.Time
	ExpireAt    time.Time
	LoggedOutAt *time.Time
	IPAddress   string
	UserAgent   string
	Device      DeviceInfo
}

type SessionState string

const (
	SessionActive    SessionState = "active"
	SessionLoggedOut SessionState = "logged_out"
	SessionExpired   SessionState = "expired"
)

func (l *LoginLog) State(now time.Time) SessionState {
	if l.LoggedOutAt != nil {
		return SessionLoggedOut
	}
	if !l.ExpireAt.After(now) {
		return SessionExpired
	}
	return SessionActive
}
