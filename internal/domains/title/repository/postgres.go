package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"yamdb-backend/internal/domains/title"
	"yamdb-backend/pkg/database"
)

type postgresTitleRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTitleRepository(db *pgxpool.Pool) title.Repository {
	return &postgresTitleRepository{db: db}
}

// ========================================
// WRITES
// ========================================

func (r *postgresTitleRepository) Create(ctx context.Context, t *title.Title, genreIDs []uuid.UUID) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO titles (id, name, year, description, category_id, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`

		if _, err := tx.Exec(ctx, query, t.ID, t.Name, t.Year, t.Description, t.CategoryID, t.CreatedAt); err != nil {
			return fmt.Errorf("failed to create title: %w", err)
		}

		return insertGenreLinks(ctx, tx, t.ID, genreIDs)
	})
}

func (r *postgresTitleRepository) Update(ctx context.Context, t *title.Title, genreIDs []uuid.UUID, replaceGenres bool) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE titles
			SET name = $2, year = $3, description = $4, category_id = $5
			WHERE id = $1`

		result, err := tx.Exec(ctx, query, t.ID, t.Name, t.Year, t.Description, t.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to update title: %w", err)
		}
		if result.RowsAffected() == 0 {
			return title.ErrTitleNotFound
		}

		if !replaceGenres {
			return nil
		}

		if _, err := tx.Exec(ctx, "DELETE FROM title_genres WHERE title_id = $1", t.ID); err != nil {
			return fmt.Errorf("failed to clear title genres: %w", err)
		}

		return insertGenreLinks(ctx, tx, t.ID, genreIDs)
	})
}

func insertGenreLinks(ctx context.Context, tx pgx.Tx, titleID uuid.UUID, genreIDs []uuid.UUID) error {
	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			"INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)",
			titleID, genreID)
		if err != nil {
			return fmt.Errorf("failed to link genre: %w", err)
		}
	}
	return nil
}

func (r *postgresTitleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, "DELETE FROM titles WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete title: %w", err)
	}
	if result.RowsAffected() == 0 {
		return title.ErrTitleNotFound
	}

	return nil
}

// ========================================
// READS
// ========================================

// detailColumns joins the category and aggregates review scores so a single
// row carries everything but the genre list.
const detailQuery = `
	SELECT t.id, t.name, t.year, t.description, t.category_id, t.created_at,
	       c.name, c.slug,
	       AVG(r.score)
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id
	LEFT JOIN reviews r ON r.title_id = t.id`

const detailGroupBy = `
	GROUP BY t.id, t.name, t.year, t.description, t.category_id, t.created_at, c.name, c.slug`

func scanTitleDetail(row pgx.Row) (*title.TitleDetail, error) {
	var d title.TitleDetail
	var catName, catSlug *string

	err := row.Scan(
		&d.ID, &d.Name, &d.Year, &d.Description, &d.CategoryID, &d.CreatedAt,
		&catName, &catSlug,
		&d.Rating,
	)
	if err != nil {
		return nil, err
	}

	if catName != nil && catSlug != nil {
		d.Category = &title.CategoryRef{Name: *catName, Slug: *catSlug}
	}
	d.Genres = []title.GenreRef{}

	return &d, nil
}

func (r *postgresTitleRepository) FindByID(ctx context.Context, id uuid.UUID) (*title.TitleDetail, error) {
	query := detailQuery + `
	WHERE t.id = $1` + detailGroupBy

	d, err := scanTitleDetail(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, title.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to find title: %w", err)
	}

	if err := r.attachGenres(ctx, []*title.TitleDetail{d}); err != nil {
		return nil, err
	}

	return d, nil
}

func (r *postgresTitleRepository) List(ctx context.Context, filter title.ListFilter, page, limit int) ([]title.TitleDetail, int, error) {
	conditions := []string{}
	args := []interface{}{}

	addArg := func(cond string, val interface{}) {
		args = append(args, val)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if filter.Name != "" {
		addArg("t.name ILIKE $%d", "%"+filter.Name+"%")
	}
	if filter.Year != 0 {
		addArg("t.year = $%d", filter.Year)
	}
	if filter.CategorySlug != "" {
		addArg("c.slug = $%d", filter.CategorySlug)
	}
	if filter.GenreSlug != "" {
		addArg(`EXISTS (
			SELECT 1 FROM title_genres tg
			JOIN genres g ON g.id = tg.genre_id
			WHERE tg.title_id = t.id AND g.slug = $%d)`, filter.GenreSlug)
	}

	where := ""
	if len(conditions) > 0 {
		where = "\n\tWHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `
		SELECT COUNT(*)
		FROM titles t
		LEFT JOIN categories c ON c.id = t.category_id` + where
	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count titles: %w", err)
	}

	offset := (page - 1) * limit
	listQuery := detailQuery + where + detailGroupBy + fmt.Sprintf(`
	ORDER BY t.year DESC, t.name, t.id
	LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list titles: %w", err)
	}
	defer rows.Close()

	details := []*title.TitleDetail{}
	for rows.Next() {
		d, err := scanTitleDetail(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan title: %w", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := r.attachGenres(ctx, details); err != nil {
		return nil, 0, err
	}

	out := make([]title.TitleDetail, 0, len(details))
	for _, d := range details {
		out = append(out, *d)
	}

	return out, total, nil
}

// attachGenres fills in the genre lists for a page of titles in one query.
func (r *postgresTitleRepository) attachGenres(ctx context.Context, details []*title.TitleDetail) error {
	if len(details) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(details))
	byID := make(map[uuid.UUID]*title.TitleDetail, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
		byID[d.ID] = d
	}

	query := `
		SELECT tg.title_id, g.name, g.slug
		FROM title_genres tg
		JOIN genres g ON g.id = tg.genre_id
		WHERE tg.title_id = ANY($1)
		ORDER BY g.name, g.slug`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to load title genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var titleID uuid.UUID
		var ref title.GenreRef
		if err := rows.Scan(&titleID, &ref.Name, &ref.Slug); err != nil {
			return fmt.Errorf("failed to scan title genre: %w", err)
		}
		if d, ok := byID[titleID]; ok {
			d.Genres = append(d.Genres, ref)
		}
	}

	return rows.Err()
}

func (r *postgresTitleRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM titles WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}

	return exists, nil
}
