package dto

import (
	"strings"
	"time"
	"unicode/utf8"

	apperror "github.com/debugg-er/zootube-api-sub000/internal/errors"
	"github.com/debugg-er/zootube-api-sub000/pkg/constant"
)

const (
	MaxTitleLength   = 100
	MaxCommentLength = 1000
)

type CreateVideoInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	VideoPath     string `json:"video_path"`
	ThumbnailPath string `json:"thumbnail_path"`
	Duration      int    `json:"duration"`
	Privacy       string `json:"privacy"`
}

func (in *CreateVideoInput) Validate() error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Privacy == "" {
		in.Privacy = constant.PrivacyPublic
	}
	switch {
	case in.Title == "":
		return apperror.Validation("title is required")
	case utf8.RuneCountInString(in.Title) > MaxTitleLength:
		return apperror.Validation("title must be at most 100 characters")
	case strings.TrimSpace(in.VideoPath) == "":
		return apperror.Validation("video_path is required")
	case in.Duration < 0:
		return apperror.Validation("duration must not be negative")
	case in.Privacy != constant.PrivacyPublic && in.Privacy != constant.PrivacyPrivate:
		return apperror.Validation("privacy must be public or private")
	}
	return nil
}

type VideoOutput struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Duration     int       `json:"duration"`
	Privacy      string    `json:"privacy"`
	Views        int64     `json:"views"`
	HotScore     int64     `json:"hot_score"`
	ViewRate     float64   `json:"view_rate"`
	Likes        int64     `json:"likes"`
	Dislikes     int64     `json:"dislikes"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

type VideoList struct {
	Items []VideoOutput `json:"items"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type ListInput struct {
	Sort  string
	Page  int
	Limit int
}

type SearchInput struct {
	Query string
	Page  int
	Limit int
}

type CommentInput struct {
	Content string `json:"content"`
}

func (in *CommentInput) Validate() error {
	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return apperror.Validation("content is required")
	}
	if utf8.RuneCountInString(in.Content) > MaxCommentLength {
		return apperror.Validation("content must be at most 1000 characters")
	}
	return nil
}

type CommentOutput struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentList struct {
	Items []CommentOutput `json:"items"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type ReactionInput struct {
	Reaction string `json:"reaction"`
}
