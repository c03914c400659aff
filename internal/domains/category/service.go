package category

import "context"

type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*CategoryDTO, error)
	List(ctx context.Context, req ListCategoriesRequest) (*ListCategoriesResponse, error)
	Delete(ctx context.Context, slug string) error
}
