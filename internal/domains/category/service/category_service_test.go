package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamdb-backend/internal/domains/category"
)

type fakeCategoryRepo struct {
	categories map[string]*category.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*category.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, cat *category.Category) error {
	if _, ok := f.categories[cat.Slug]; ok {
		return category.ErrSlugTaken
	}
	f.categories[cat.Slug] = cat
	return nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	cat, ok := f.categories[slug]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return cat, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ string, _, _ int) ([]category.Category, int, error) {
	out := []category.Category{}
	for _, cat := range f.categories {
		out = append(out, *cat)
	}
	return out, len(out), nil
}

func (f *fakeCategoryRepo) DeleteBySlug(_ context.Context, slug string) error {
	if _, ok := f.categories[slug]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(f.categories, slug)
	return nil
}

func TestCategoryService_Create(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	dto, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Books",
		Slug: "books",
	})
	require.NoError(t, err)
	assert.Equal(t, "Books", dto.Name)
	assert.Equal(t, "books", dto.Slug)
}

func TestCategoryService_Create_DuplicateSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{Name: "Books", Slug: "books"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), category.CreateCategoryRequest{Name: "More books", Slug: "books"})
	assert.ErrorIs(t, err, category.ErrSlugTaken)
}

func TestCategoryService_Create_InvalidSlug(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), category.CreateCategoryRequest{
		Name: "Books",
		Slug: "bad slug!",
	})
	require.Error(t, err)

	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "slug")
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
}
