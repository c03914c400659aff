package genre

import "context"

type Service interface {
	Create(ctx context.Context, req CreateGenreRequest) (*GenreDTO, error)
	List(ctx context.Context, req ListGenresRequest) (*ListGenresResponse, error)
	Delete(ctx context.Context, slug string) error
}
