package dto

import "time"

type SessionOutput struct {
	ID          string     `json:"id"`
	IPAddress   string     `json:"ip_address"`
	Browser     string     `json:"browser"`
	OS          string     `json:"os"`
	Device      string     `json:"device"`
	CPU         string     `json:"cpu"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpireAt    time.Time  `json:"expire_at"`
	LoggedOutAt *time.Time `json:"logged_out_at"`
	State       string     `json:"state"`
	Current     bool       `json:"current"`
}

type SessionList struct {
	Items []SessionOutput `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Total int             `json:"total"`
}

type LogoutOthersOutput struct {
	Revoked int `json:"revoked"`
}
