package model

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	MinScore = 1
	MaxScore = 10
)

// errScoreRange names the valid range on every score rule. The presence rule
// keeps it too: ozzo skips threshold rules for zero values, so without it a
// score of 0 would slip past Min.
var errScoreRange = fmt.Sprintf("score must be between %d and %d", MinScore, MaxScore)

// ========================================
// REQUEST DTOs
// ========================================

type CreateReviewRequest struct {
	Text  string `json:"text"`
	Score int    `json:"score"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Score,
			validation.Required.Error(errScoreRange),
			validation.Min(MinScore).Error(errScoreRange),
			validation.Max(MaxScore).Error(errScoreRange),
		),
	)
}

type UpdateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

func (r UpdateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Length(1, 0)),
		validation.Field(&r.Score,
			validation.When(r.Score != nil,
				validation.Required.Error(errScoreRange),
				validation.Min(MinScore).Error(errScoreRange),
				validation.Max(MaxScore).Error(errScoreRange),
			),
		),
	)
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}

func (r CreateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required),
	)
}

type UpdateCommentRequest struct {
	Text *string `json:"text"`
}

func (r UpdateCommentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Length(1, 0)),
	)
}

type ListRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r *ListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

type ReviewDTO struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	Score   int       `json:"score"`
	PubDate time.Time `json:"pub_date"`
}

type CommentDTO struct {
	ID      string    `json:"id"`
	Author  string    `json:"author"`
	Text    string    `json:"text"`
	PubDate time.Time `json:"pub_date"`
}

type ListReviewsResponse struct {
	Reviews []ReviewDTO `json:"reviews"`
	Total   int         `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}

type ListCommentsResponse struct {
	Comments []CommentDTO `json:"comments"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	Limit    int          `json:"limit"`
}
