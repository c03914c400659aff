package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamdb-backend/internal/domains/category"
	"yamdb-backend/internal/domains/genre"
	"yamdb-backend/internal/domains/title"
)

// ========================================
// FAKES
// ========================================

type fakeTitleRepo struct {
	titles  map[uuid.UUID]*title.Title
	genres  map[uuid.UUID][]uuid.UUID
	ratings map[uuid.UUID]*float64

	categoryRefs map[uuid.UUID]title.CategoryRef
	genreRefs    map[uuid.UUID]title.GenreRef
}

func newFakeTitleRepo() *fakeTitleRepo {
	return &fakeTitleRepo{
		titles:       map[uuid.UUID]*title.Title{},
		genres:       map[uuid.UUID][]uuid.UUID{},
		ratings:      map[uuid.UUID]*float64{},
		categoryRefs: map[uuid.UUID]title.CategoryRef{},
		genreRefs:    map[uuid.UUID]title.GenreRef{},
	}
}

func (f *fakeTitleRepo) Create(_ context.Context, t *title.Title, genreIDs []uuid.UUID) error {
	cp := *t
	f.titles[t.ID] = &cp
	f.genres[t.ID] = genreIDs
	return nil
}

func (f *fakeTitleRepo) Update(_ context.Context, t *title.Title, genreIDs []uuid.UUID, replaceGenres bool) error {
	if _, ok := f.titles[t.ID]; !ok {
		return title.ErrTitleNotFound
	}
	cp := *t
	f.titles[t.ID] = &cp
	if replaceGenres {
		f.genres[t.ID] = genreIDs
	}
	return nil
}

func (f *fakeTitleRepo) FindByID(_ context.Context, id uuid.UUID) (*title.TitleDetail, error) {
	t, ok := f.titles[id]
	if !ok {
		return nil, title.ErrTitleNotFound
	}

	d := &title.TitleDetail{Title: *t, Rating: f.ratings[id], Genres: []title.GenreRef{}}
	if t.CategoryID != nil {
		if ref, ok := f.categoryRefs[*t.CategoryID]; ok {
			d.Category = &ref
		}
	}
	for _, gid := range f.genres[id] {
		if ref, ok := f.genreRefs[gid]; ok {
			d.Genres = append(d.Genres, ref)
		}
	}
	return d, nil
}

func (f *fakeTitleRepo) List(_ context.Context, _ title.ListFilter, _, _ int) ([]title.TitleDetail, int, error) {
	out := []title.TitleDetail{}
	for id := range f.titles {
		d, _ := f.FindByID(context.Background(), id)
		out = append(out, *d)
	}
	return out, len(out), nil
}

func (f *fakeTitleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.titles[id]; !ok {
		return title.ErrTitleNotFound
	}
	delete(f.titles, id)
	return nil
}

func (f *fakeTitleRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.titles[id]
	return ok, nil
}

type fakeCategoryRepo struct {
	bySlug map[string]*category.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, cat *category.Category) error {
	f.bySlug[cat.Slug] = cat
	return nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*category.Category, error) {
	cat, ok := f.bySlug[slug]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return cat, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ string, _, _ int) ([]category.Category, int, error) {
	return nil, 0, nil
}

func (f *fakeCategoryRepo) DeleteBySlug(_ context.Context, _ string) error { return nil }

type fakeGenreRepo struct {
	bySlug map[string]*genre.Genre
}

func (f *fakeGenreRepo) Create(_ context.Context, g *genre.Genre) error {
	f.bySlug[g.Slug] = g
	return nil
}

func (f *fakeGenreRepo) FindBySlug(_ context.Context, slug string) (*genre.Genre, error) {
	g, ok := f.bySlug[slug]
	if !ok {
		return nil, genre.ErrGenreNotFound
	}
	return g, nil
}

func (f *fakeGenreRepo) FindBySlugs(_ context.Context, slugs []string) ([]genre.Genre, error) {
	out := []genre.Genre{}
	for _, slug := range slugs {
		if g, ok := f.bySlug[slug]; ok {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGenreRepo) List(_ context.Context, _ string, _, _ int) ([]genre.Genre, int, error) {
	return nil, 0, nil
}

func (f *fakeGenreRepo) DeleteBySlug(_ context.Context, _ string) error { return nil }

// ========================================
// SETUP
// ========================================

func setupTitleService(t *testing.T) (title.Service, *fakeTitleRepo) {
	t.Helper()

	books := &category.Category{ID: uuid.New(), Name: "Books", Slug: "books"}
	drama := &genre.Genre{ID: uuid.New(), Name: "Drama", Slug: "drama"}
	thriller := &genre.Genre{ID: uuid.New(), Name: "Thriller", Slug: "thriller"}

	repo := newFakeTitleRepo()
	repo.categoryRefs[books.ID] = title.CategoryRef{Name: books.Name, Slug: books.Slug}
	repo.genreRefs[drama.ID] = title.GenreRef{Name: drama.Name, Slug: drama.Slug}
	repo.genreRefs[thriller.ID] = title.GenreRef{Name: thriller.Name, Slug: thriller.Slug}

	categories := &fakeCategoryRepo{bySlug: map[string]*category.Category{"books": books}}
	genres := &fakeGenreRepo{bySlug: map[string]*genre.Genre{"drama": drama, "thriller": thriller}}

	return NewTitleService(repo, categories, genres), repo
}

// ========================================
// TESTS
// ========================================

func TestTitleService_Create(t *testing.T) {
	svc, _ := setupTitleService(t)

	dto, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "The Master and Margarita",
		Year:     1967,
		Genre:    []string{"drama", "thriller"},
		Category: "books",
	})
	require.NoError(t, err)

	assert.Equal(t, "The Master and Margarita", dto.Name)
	assert.Equal(t, 1967, dto.Year)
	assert.Nil(t, dto.Rating)
	require.NotNil(t, dto.Category)
	assert.Equal(t, "books", dto.Category.Slug)
	assert.Len(t, dto.Genre, 2)
}

func TestTitleService_Create_FutureYear(t *testing.T) {
	svc, _ := setupTitleService(t)

	_, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "Time Machine Review",
		Year:     time.Now().Year() + 1,
		Genre:    []string{"drama"},
		Category: "books",
	})
	require.Error(t, err)

	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "year")
}

func TestTitleService_Create_UnknownGenre(t *testing.T) {
	svc, _ := setupTitleService(t)

	_, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "Some Title",
		Year:     2000,
		Genre:    []string{"drama", "nope"},
		Category: "books",
	})
	assert.ErrorIs(t, err, title.ErrUnknownGenre)
}

func TestTitleService_Create_UnknownCategory(t *testing.T) {
	svc, _ := setupTitleService(t)

	_, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "Some Title",
		Year:     2000,
		Genre:    []string{"drama"},
		Category: "nope",
	})
	assert.ErrorIs(t, err, title.ErrUnknownCategory)
}

func TestTitleService_Update_PartialPatch(t *testing.T) {
	svc, _ := setupTitleService(t)

	created, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "Old Name",
		Year:     1990,
		Genre:    []string{"drama"},
		Category: "books",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	newName := "New Name"
	updated, err := svc.Update(context.Background(), id, title.UpdateTitleRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, 1990, updated.Year)
	require.Len(t, updated.Genre, 1)
	assert.Equal(t, "drama", updated.Genre[0].Slug)
}

func TestTitleService_Update_ReplacesGenres(t *testing.T) {
	svc, _ := setupTitleService(t)

	created, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "Some Title",
		Year:     2000,
		Genre:    []string{"drama"},
		Category: "books",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	updated, err := svc.Update(context.Background(), id, title.UpdateTitleRequest{
		Genre: []string{"thriller"},
	})
	require.NoError(t, err)

	require.Len(t, updated.Genre, 1)
	assert.Equal(t, "thriller", updated.Genre[0].Slug)
}

func TestTitleService_RatingFromRepository(t *testing.T) {
	svc, repo := setupTitleService(t)

	created, err := svc.Create(context.Background(), title.CreateTitleRequest{
		Name:     "Rated Title",
		Year:     2000,
		Genre:    []string{"drama"},
		Category: "books",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	mean := 7.5
	repo.ratings[id] = &mean

	dto, err := svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, dto.Rating)
	assert.InDelta(t, 7.5, *dto.Rating, 0.0001)
}

func TestTitleService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTitleService(t)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, title.ErrTitleNotFound)
}
