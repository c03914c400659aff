package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups titles by kind of work (books, films, music, ...).
// Slug is the public identifier used in URLs and filters.
type Category struct {
	ID        uuid.UUID `json:"-" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

func (cat *Category) ToDTO() CategoryDTO {
	return CategoryDTO{
		Name: cat.Name,
		Slug: cat.Slug,
	}
}
