package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"yamdb-backend/internal/domains/category"
)

type categoryService struct {
	repo category.Repository
}

func NewCategoryService(repo category.Repository) category.Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.CategoryDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cat := &category.Category{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	dto := cat.ToDTO()
	return &dto, nil
}

func (s *categoryService) List(ctx context.Context, req category.ListCategoriesRequest) (*category.ListCategoriesResponse, error) {
	req.Normalize()

	categories, total, err := s.repo.List(ctx, req.Search, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]category.CategoryDTO, 0, len(categories))
	for _, cat := range categories {
		dtos = append(dtos, cat.ToDTO())
	}

	return &category.ListCategoriesResponse{
		Categories: dtos,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
	}, nil
}

func (s *categoryService) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}
