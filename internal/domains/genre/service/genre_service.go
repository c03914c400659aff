package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"yamdb-backend/internal/domains/genre"
)

type genreService struct {
	repo genre.Repository
}

func NewGenreService(repo genre.Repository) genre.Service {
	return &genreService{repo: repo}
}

func (s *genreService) Create(ctx context.Context, req genre.CreateGenreRequest) (*genre.GenreDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g := &genre.Genre{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      req.Slug,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}

	dto := g.ToDTO()
	return &dto, nil
}

func (s *genreService) List(ctx context.Context, req genre.ListGenresRequest) (*genre.ListGenresResponse, error) {
	req.Normalize()

	genres, total, err := s.repo.List(ctx, req.Search, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]genre.GenreDTO, 0, len(genres))
	for _, g := range genres {
		dtos = append(dtos, g.ToDTO())
	}

	return &genre.ListGenresResponse{
		Genres: dtos,
		Total:  total,
		Page:   req.Page,
		Limit:  req.Limit,
	}, nil
}

func (s *genreService) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}
