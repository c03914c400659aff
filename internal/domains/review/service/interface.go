package service

import (
	"context"

	"github.com/google/uuid"

	"yamdb-backend/internal/domains/review/model"
	"yamdb-backend/internal/domains/user"
)

// Actor is the authenticated caller, as established by the auth middleware.
// Authorship and moderation checks run against it, never against request
// bodies.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     user.Role
}

type ReviewService interface {
	CreateReview(ctx context.Context, titleID uuid.UUID, actor Actor, req model.CreateReviewRequest) (*model.ReviewDTO, error)
	ListReviews(ctx context.Context, titleID uuid.UUID, req model.ListRequest) (*model.ListReviewsResponse, error)
	GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*model.ReviewDTO, error)
	UpdateReview(ctx context.Context, titleID, reviewID uuid.UUID, actor Actor, req model.UpdateReviewRequest) (*model.ReviewDTO, error)
	DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID, actor Actor) error

	CreateComment(ctx context.Context, titleID, reviewID uuid.UUID, actor Actor, req model.CreateCommentRequest) (*model.CommentDTO, error)
	ListComments(ctx context.Context, titleID, reviewID uuid.UUID, req model.ListRequest) (*model.ListCommentsResponse, error)
	GetComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*model.CommentDTO, error)
	UpdateComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID, actor Actor, req model.UpdateCommentRequest) (*model.CommentDTO, error)
	DeleteComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID, actor Actor) error
}
