package title

import (
	"time"

	"github.com/google/uuid"
)

// Title is a single work (a book, a film, a record). Users do not add
// titles themselves, only admins do; users review them.
type Title struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Year        int        `json:"year" db:"year"`
	Description string     `json:"description" db:"description"`
	CategoryID  *uuid.UUID `json:"-" db:"category_id"`
	CreatedAt   time.Time  `json:"-" db:"created_at"`
}

// CategoryRef and GenreRef are denormalized snippets embedded in title reads
// so list and detail responses need no extra round trips.
type CategoryRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type GenreRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// TitleDetail is the read model: the title row joined with its category,
// genres and the mean review score. Rating is nil until the first review.
type TitleDetail struct {
	Title
	Rating   *float64     `json:"rating"`
	Category *CategoryRef `json:"category"`
	Genres   []GenreRef   `json:"genre"`
}

func (d *TitleDetail) ToDTO() TitleDTO {
	return TitleDTO{
		ID:          d.ID.String(),
		Name:        d.Name,
		Year:        d.Year,
		Rating:      d.Rating,
		Description: d.Description,
		Genre:       d.Genres,
		Category:    d.Category,
	}
}
