package title

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows title listings. Zero values mean "no filter".
type ListFilter struct {
	Name         string
	Year         int
	CategorySlug string
	GenreSlug    string
}

type Repository interface {
	// Create inserts the title row and its genre links in one transaction.
	Create(ctx context.Context, t *Title, genreIDs []uuid.UUID) error
	// Update rewrites the title row; when replaceGenres is true the genre
	// links are replaced with genreIDs in the same transaction.
	Update(ctx context.Context, t *Title, genreIDs []uuid.UUID, replaceGenres bool) error
	FindByID(ctx context.Context, id uuid.UUID) (*TitleDetail, error)
	List(ctx context.Context, filter ListFilter, page, limit int) ([]TitleDetail, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
