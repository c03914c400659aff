package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is one user's verdict on a title. The pair (author, title) is
// unique; the database enforces it so concurrent submissions cannot slip a
// duplicate through.
type Review struct {
	ID       uuid.UUID `json:"id" db:"id"`
	TitleID  uuid.UUID `json:"-" db:"title_id"`
	AuthorID uuid.UUID `json:"-" db:"author_id"`
	Text     string    `json:"text" db:"text"`
	Score    int       `json:"score" db:"score"`
	PubDate  time.Time `json:"pub_date" db:"pub_date"`

	// AuthorUsername is read-only, joined from the users table.
	AuthorUsername string `json:"author" db:"-"`
}

// Comment is a reply to a review.
type Comment struct {
	ID       uuid.UUID `json:"id" db:"id"`
	ReviewID uuid.UUID `json:"-" db:"review_id"`
	AuthorID uuid.UUID `json:"-" db:"author_id"`
	Text     string    `json:"text" db:"text"`
	PubDate  time.Time `json:"pub_date" db:"pub_date"`

	AuthorUsername string `json:"author" db:"-"`
}

func (r *Review) ToDTO() ReviewDTO {
	return ReviewDTO{
		ID:      r.ID.String(),
		Author:  r.AuthorUsername,
		Text:    r.Text,
		Score:   r.Score,
		PubDate: r.PubDate,
	}
}

func (c *Comment) ToDTO() CommentDTO {
	return CommentDTO{
		ID:      c.ID.String(),
		Author:  c.AuthorUsername,
		Text:    c.Text,
		PubDate: c.PubDate,
	}
}
