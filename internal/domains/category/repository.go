package category

import "context"

type Repository interface {
	Create(ctx context.Context, cat *Category) error
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	List(ctx context.Context, search string, page, limit int) ([]Category, int, error)
	DeleteBySlug(ctx context.Context, slug string) error
}
