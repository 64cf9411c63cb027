package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error and decides the HTTP status it maps to.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindTooManyRequests
	KindStorage
)

// AppError is the error type every service returns to handlers.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

var (
	ErrInvalidCredentials   = New(KindUnauthorized, "invalid credentials")
	ErrEmailAlreadyInUse    = New(KindConflict, "email already in use")
	ErrUsernameAlreadyInUse = New(KindConflict, "username already in use")
	ErrAccountBlocked       = New(KindForbidden, "account is blocked")
	ErrMissingToken         = New(KindUnauthorized, "authorization header is required")
	ErrMalformedToken       = New(KindUnauthorized, "invalid authorization header format")
	ErrInvalidToken         = New(KindUnauthorized, "invalid token")
	ErrExpiredToken         = New(KindUnauthorized, "token expired")
	ErrRevokedToken         = New(KindUnauthorized, "token revoked")
	ErrUserNotFound         = New(KindNotFound, "user not found")
	ErrSessionNotFound      = New(KindNotFound, "session not found")
	ErrCurrentSession       = New(KindValidation, "cannot delete the session making this request")
	ErrVideoNotFound        = New(KindNotFound, "video not found")
	ErrNotVideoOwner        = New(KindForbidden, "only the video owner can do this")
	ErrInvalidBucketUnit    = New(KindValidation, "unit must be one of day, month, year")
	ErrInvalidReaction      = New(KindValidation, "reaction must be like or dislike")
	ErrTooManyRequests      = New(KindTooManyRequests, "too many requests")
)

// Validation reports missing or malformed client input.
func Validation(message string) *AppError {
	return New(KindValidation, message)
}

// Storage wraps a database or cache failure. The wrapped detail is logged, never sent to clients.
func Storage(op string, err error) *AppError {
	return &AppError{Kind: KindStorage, Message: op, Err: err}
}

// Revocation marks a failure to write the revocation list. Callers must fail the request.
func Revocation(err error) *AppError {
	return &AppError{Kind: KindStorage, Message: "revoke token", Err: err}
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// StatusOf maps err to an HTTP status code. Errors outside the taxonomy are internal.
func StatusOf(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the message safe to show a client for err.
func PublicMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && StatusOf(err) < http.StatusInternalServerError {
		return appErr.Message
	}
	return "internal server error"
}
