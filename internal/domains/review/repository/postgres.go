package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"yamdb-backend/internal/domains/review/model"
)

type postgresReviewRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReviewRepository(db *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{db: db}
}

// ========================================
// REVIEWS
// ========================================

const reviewColumns = `r.id, r.title_id, r.author_id, r.text, r.score, r.pub_date, u.username`

func scanReview(row pgx.Row) (*model.Review, error) {
	var r model.Review
	err := row.Scan(&r.ID, &r.TitleID, &r.AuthorID, &r.Text, &r.Score, &r.PubDate, &r.AuthorUsername)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (repo *postgresReviewRepository) CreateReview(ctx context.Context, r *model.Review) error {
	query := `
		INSERT INTO reviews (id, title_id, author_id, text, score, pub_date)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := repo.db.Exec(ctx, query, r.ID, r.TitleID, r.AuthorID, r.Text, r.Score, r.PubDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrAlreadyReviewed
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

func (repo *postgresReviewRepository) FindReviewByID(ctx context.Context, titleID, reviewID uuid.UUID) (*model.Review, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.title_id = $1 AND r.id = $2`, reviewColumns)

	r, err := scanReview(repo.db.QueryRow(ctx, query, titleID, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to find review: %w", err)
	}

	return r, nil
}

func (repo *postgresReviewRepository) ListReviews(ctx context.Context, titleID uuid.UUID, page, limit int) ([]model.Review, int, error) {
	var total int
	err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM reviews WHERE title_id = $1", titleID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.title_id = $1
		ORDER BY r.pub_date, r.id
		LIMIT $2 OFFSET $3`, reviewColumns)

	rows, err := repo.db.Query(ctx, query, titleID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *r)
	}

	return reviews, total, rows.Err()
}

func (repo *postgresReviewRepository) UpdateReview(ctx context.Context, r *model.Review) error {
	query := `
		UPDATE reviews
		SET text = $3, score = $4
		WHERE title_id = $1 AND id = $2`

	result, err := repo.db.Exec(ctx, query, r.TitleID, r.ID, r.Text, r.Score)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

func (repo *postgresReviewRepository) DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error {
	result, err := repo.db.Exec(ctx,
		"DELETE FROM reviews WHERE title_id = $1 AND id = $2", titleID, reviewID)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrReviewNotFound
	}

	return nil
}

// ========================================
// COMMENTS
// ========================================

const commentColumns = `c.id, c.review_id, c.author_id, c.text, c.pub_date, u.username`

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	err := row.Scan(&c.ID, &c.ReviewID, &c.AuthorID, &c.Text, &c.PubDate, &c.AuthorUsername)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *postgresReviewRepository) CreateComment(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO comments (id, review_id, author_id, text, pub_date)
		VALUES ($1, $2, $3, $4, $5)`

	if _, err := repo.db.Exec(ctx, query, c.ID, c.ReviewID, c.AuthorID, c.Text, c.PubDate); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (repo *postgresReviewRepository) FindCommentByID(ctx context.Context, reviewID, commentID uuid.UUID) (*model.Comment, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.review_id = $1 AND c.id = $2`, commentColumns)

	c, err := scanComment(repo.db.QueryRow(ctx, query, reviewID, commentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return c, nil
}

func (repo *postgresReviewRepository) ListComments(ctx context.Context, reviewID uuid.UUID, page, limit int) ([]model.Comment, int, error) {
	var total int
	err := repo.db.QueryRow(ctx, "SELECT COUNT(*) FROM comments WHERE review_id = $1", reviewID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.review_id = $1
		ORDER BY c.pub_date, c.id
		LIMIT $2 OFFSET $3`, commentColumns)

	rows, err := repo.db.Query(ctx, query, reviewID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}

	return comments, total, rows.Err()
}

func (repo *postgresReviewRepository) UpdateComment(ctx context.Context, c *model.Comment) error {
	query := `
		UPDATE comments
		SET text = $3
		WHERE review_id = $1 AND id = $2`

	result, err := repo.db.Exec(ctx, query, c.ReviewID, c.ID, c.Text)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}

func (repo *postgresReviewRepository) DeleteComment(ctx context.Context, reviewID, commentID uuid.UUID) error {
	result, err := repo.db.Exec(ctx,
		"DELETE FROM comments WHERE review_id = $1 AND id = $2", reviewID, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}

	return nil
}
