package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"yamdb-backend/internal/domains/review/model"
	"yamdb-backend/internal/domains/review/repository"
	"yamdb-backend/internal/domains/title"
	"yamdb-backend/internal/shared/permission"
)

type reviewService struct {
	repo   repository.ReviewRepository
	titles title.Repository
}

func NewReviewService(repo repository.ReviewRepository, titles title.Repository) ReviewService {
	return &reviewService{repo: repo, titles: titles}
}

// ensureTitle rejects requests aimed at a title that does not exist before
// any review work happens.
func (s *reviewService) ensureTitle(ctx context.Context, titleID uuid.UUID) error {
	exists, err := s.titles.Exists(ctx, titleID)
	if err != nil {
		return err
	}
	if !exists {
		return title.ErrTitleNotFound
	}
	return nil
}

// ========================================
// REVIEWS
// ========================================

func (s *reviewService) CreateReview(ctx context.Context, titleID uuid.UUID, actor Actor, req model.CreateReviewRequest) (*model.ReviewDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}

	r := &model.Review{
		ID:             uuid.New(),
		TitleID:        titleID,
		AuthorID:       actor.ID,
		Text:           req.Text,
		Score:          req.Score,
		PubDate:        time.Now(),
		AuthorUsername: actor.Username,
	}
	if err := s.repo.CreateReview(ctx, r); err != nil {
		return nil, err
	}

	dto := r.ToDTO()
	return &dto, nil
}

func (s *reviewService) ListReviews(ctx context.Context, titleID uuid.UUID, req model.ListRequest) (*model.ListReviewsResponse, error) {
	if err := s.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}
	req.Normalize()

	reviews, total, err := s.repo.ListReviews(ctx, titleID, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.ReviewDTO, 0, len(reviews))
	for i := range reviews {
		dtos = append(dtos, reviews[i].ToDTO())
	}

	return &model.ListReviewsResponse{
		Reviews: dtos,
		Total:   total,
		Page:    req.Page,
		Limit:   req.Limit,
	}, nil
}

func (s *reviewService) GetReview(ctx context.Context, titleID, reviewID uuid.UUID) (*model.ReviewDTO, error) {
	if err := s.ensureTitle(ctx, titleID); err != nil {
		return nil, err
	}

	r, err := s.repo.FindReviewByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}

	dto := r.ToDTO()
	return &dto, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, titleID, reviewID uuid.UUID, actor Actor, req model.UpdateReviewRequest) (*model.ReviewDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r, err := s.repo.FindReviewByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, err
	}
	if !permission.CanModerateContent(actor.Role, r.AuthorID == actor.ID) {
		return nil, model.ErrNotOwner
	}

	if req.Text != nil {
		r.Text = *req.Text
	}
	if req.Score != nil {
		r.Score = *req.Score
	}
	if err := s.repo.UpdateReview(ctx, r); err != nil {
		return nil, err
	}

	dto := r.ToDTO()
	return &dto, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, titleID, reviewID uuid.UUID, actor Actor) error {
	r, err := s.repo.FindReviewByID(ctx, titleID, reviewID)
	if err != nil {
		return err
	}
	if !permission.CanModerateContent(actor.Role, r.AuthorID == actor.ID) {
		return model.ErrNotOwner
	}

	return s.repo.DeleteReview(ctx, titleID, reviewID)
}

// ========================================
// COMMENTS
// ========================================

// ensureReview walks the title/review chain so a comment request with a
// mismatched parent 404s.
func (s *reviewService) ensureReview(ctx context.Context, titleID, reviewID uuid.UUID) error {
	if err := s.ensureTitle(ctx, titleID); err != nil {
		return err
	}
	_, err := s.repo.FindReviewByID(ctx, titleID, reviewID)
	return err
}

func (s *reviewService) CreateComment(ctx context.Context, titleID, reviewID uuid.UUID, actor Actor, req model.CreateCommentRequest) (*model.CommentDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	c := &model.Comment{
		ID:             uuid.New(),
		ReviewID:       reviewID,
		AuthorID:       actor.ID,
		Text:           req.Text,
		PubDate:        time.Now(),
		AuthorUsername: actor.Username,
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *reviewService) ListComments(ctx context.Context, titleID, reviewID uuid.UUID, req model.ListRequest) (*model.ListCommentsResponse, error) {
	if err := s.ensureReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}
	req.Normalize()

	comments, total, err := s.repo.ListComments(ctx, reviewID, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.CommentDTO, 0, len(comments))
	for i := range comments {
		dtos = append(dtos, comments[i].ToDTO())
	}

	return &model.ListCommentsResponse{
		Comments: dtos,
		Total:    total,
		Page:     req.Page,
		Limit:    req.Limit,
	}, nil
}

func (s *reviewService) GetComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID) (*model.CommentDTO, error) {
	if err := s.ensureReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	c, err := s.repo.FindCommentByID(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *reviewService) UpdateComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID, actor Actor, req model.UpdateCommentRequest) (*model.CommentDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.ensureReview(ctx, titleID, reviewID); err != nil {
		return nil, err
	}

	c, err := s.repo.FindCommentByID(ctx, reviewID, commentID)
	if err != nil {
		return nil, err
	}
	if !permission.CanModerateContent(actor.Role, c.AuthorID == actor.ID) {
		return nil, model.ErrNotOwner
	}

	if req.Text != nil {
		c.Text = *req.Text
	}
	if err := s.repo.UpdateComment(ctx, c); err != nil {
		return nil, err
	}

	dto := c.ToDTO()
	return &dto, nil
}

func (s *reviewService) DeleteComment(ctx context.Context, titleID, reviewID, commentID uuid.UUID, actor Actor) error {
	if err := s.ensureReview(ctx, titleID, reviewID); err != nil {
		return err
	}

	c, err := s.repo.FindCommentByID(ctx, reviewID, commentID)
	if err != nil {
		return err
	}
	if !permission.CanModerateContent(actor.Role, c.AuthorID == actor.ID) {
		return model.ErrNotOwner
	}

	return s.repo.DeleteComment(ctx, reviewID, commentID)
}
