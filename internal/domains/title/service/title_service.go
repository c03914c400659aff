package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"yamdb-backend/internal/domains/category"
	"yamdb-backend/internal/domains/genre"
	"yamdb-backend/internal/domains/title"
)

type titleService struct {
	repo       title.Repository
	categories category.Repository
	genres     genre.Repository
}

func NewTitleService(repo title.Repository, categories category.Repository, genres genre.Repository) title.Service {
	return &titleService{
		repo:       repo,
		categories: categories,
		genres:     genres,
	}
}

func (s *titleService) Create(ctx context.Context, req title.CreateTitleRequest) (*title.TitleDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	genreIDs, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	t := &title.Title{
		ID:          uuid.New(),
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		CategoryID:  categoryID,
		CreatedAt:   time.Now(),
	}
	if err := s.repo.Create(ctx, t, genreIDs); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, t.ID)
}

func (s *titleService) GetByID(ctx context.Context, id uuid.UUID) (*title.TitleDTO, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := detail.ToDTO()
	return &dto, nil
}

func (s *titleService) List(ctx context.Context, req title.ListTitlesRequest) (*title.ListTitlesResponse, error) {
	req.Normalize()

	filter := title.ListFilter{
		Name:         req.Name,
		Year:         req.Year,
		CategorySlug: req.Category,
		GenreSlug:    req.Genre,
	}
	details, total, err := s.repo.List(ctx, filter, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]title.TitleDTO, 0, len(details))
	for i := range details {
		dtos = append(dtos, details[i].ToDTO())
	}

	return &title.ListTitlesResponse{
		Titles: dtos,
		Total:  total,
		Page:   req.Page,
		Limit:  req.Limit,
	}, nil
}

func (s *titleService) Update(ctx context.Context, id uuid.UUID, req title.UpdateTitleRequest) (*title.TitleDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	t := detail.Title

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Year != nil {
		t.Year = *req.Year
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Category != nil {
		categoryID, err := s.resolveCategory(ctx, *req.Category)
		if err != nil {
			return nil, err
		}
		t.CategoryID = categoryID
	}

	var genreIDs []uuid.UUID
	replaceGenres := req.Genre != nil
	if replaceGenres {
		if genreIDs, err = s.resolveGenres(ctx, req.Genre); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, &t, genreIDs, replaceGenres); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, id)
}

func (s *titleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// resolveCategory maps a slug onto a category id. An empty slug clears the
// category.
func (s *titleService) resolveCategory(ctx context.Context, slug string) (*uuid.UUID, error) {
	if slug == "" {
		return nil, nil
	}

	cat, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return nil, title.ErrUnknownCategory
		}
		return nil, err
	}

	return &cat.ID, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]uuid.UUID, error) {
	unique := dedupe(slugs)
	genres, err := s.genres.FindBySlugs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(genres) != len(unique) {
		return nil, title.ErrUnknownGenre
	}

	ids := make([]uuid.UUID, 0, len(genres))
	for _, g := range genres {
		ids = append(ids, g.ID)
	}
	return ids, nil
}

func dedupe(slugs []string) []string {
	seen := make(map[string]struct{}, len(slugs))
	out := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
