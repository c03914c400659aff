package genre

import (
	"time"

	"github.com/google/uuid"
)

// Genre tags titles by style (drama, rock, thriller, ...). A title may
// carry several genres.
type Genre struct {
	ID        uuid.UUID `json:"-" db:"id"`
	Name      string    `json:"name" db:"name"`
	Slug      string    `json:"slug" db:"slug"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

func (g *Genre) ToDTO() GenreDTO {
	return GenreDTO{
		Name: g.Name,
		Slug: g.Slug,
	}
}
