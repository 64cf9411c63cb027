package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
)

const MinPasswordLength = 8

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (in *RegisterInput) Validate() error {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	switch {
	case !usernamePattern.MatchString(in.Username):
		return apperror.Validation("username must be 3-32 letters, digits or underscores")
	case !govalidator.IsEmail(in.Email):
		return apperror.Validation("email is invalid")
	case len(in.Password) < MinPasswordLength:
		return apperror.Validation("password must be at least 8 characters")
	}
	return nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in *LoginInput) Validate() error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" || in.Password == "" {
		return apperror.Validation("email and password are required")
	}
	return nil
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (in *ChangePasswordInput) Validate() error {
	if in.OldPassword == "" {
		return apperror.Validation("old_password is required")
	}
	if len(in.NewPassword) < MinPasswordLength {
		return apperror.Validation("new_password must be at least 8 characters")
	}
	return nil
}

// DeviceInput is captured from the request, never from the body.
type DeviceInput struct {
	IPAddress string
	UserAgent string
}

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresIn   int64     `json:"expires_in"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type UserOutput struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}
