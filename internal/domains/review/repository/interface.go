package repository

import (
	"context"

	"github.com/google/uuid"

	"yamdb-backend/internal/domains/review/model"
)

// ReviewRepository persists reviews and their comments. Review lookups are
// scoped to a title and comment lookups to a review, so a valid id under the
// wrong parent is a not-found, not a leak.
type ReviewRepository interface {
	CreateReview(ctx context.Context, r *model.Review) error
	FindReviewByID(ctx context.Context, titleID, reviewID uuid.UUID) (*model.Review, error)
	ListReviews(ctx context.Context, titleID uuid.UUID, page, limit int) ([]model.Review, int, error)
	UpdateReview(ctx context.Context, r *model.Review) error
	DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID) error

	CreateComment(ctx context.Context, c *model.Comment) error
	FindCommentByID(ctx context.Context, reviewID, commentID uuid.UUID) (*model.Comment, error)
	ListComments(ctx context.Context, reviewID uuid.UUID, page, limit int) ([]model.Comment, int, error)
	UpdateComment(ctx context.Context, c *model.Comment) error
	DeleteComment(ctx context.Context, reviewID, commentID uuid.UUID) error
}
