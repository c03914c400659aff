package genre

import "context"

type Repository interface {
	Create(ctx context.Context, g *Genre) error
	FindBySlug(ctx context.Context, slug string) (*Genre, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]Genre, error)
	List(ctx context.Context, search string, page, limit int) ([]Genre, int, error)
	DeleteBySlug(ctx context.Context, slug string) error
}
