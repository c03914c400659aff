package service

import (
	"context"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamdb-backend/internal/domains/review/model"
	"yamdb-backend/internal/domains/title"
	"yamdb-backend/internal/domains/user"
)

// ========================================
// FAKES
// ========================================

type fakeReviewRepo struct {
	reviews  map[uuid.UUID]*model.Review
	comments map[uuid.UUID]*model.Comment
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews:  map[uuid.UUID]*model.Review{},
		comments: map[uuid.UUID]*model.Comment{},
	}
}

func (f *fakeReviewRepo) CreateReview(_ context.Context, r *model.Review) error {
	for _, existing := range f.reviews {
		if existing.TitleID == r.TitleID && existing.AuthorID == r.AuthorID {
			return model.ErrAlreadyReviewed
		}
	}
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) FindReviewByID(_ context.Context, titleID, reviewID uuid.UUID) (*model.Review, error) {
	r, ok := f.reviews[reviewID]
	if !ok || r.TitleID != titleID {
		return nil, model.ErrReviewNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeReviewRepo) ListReviews(_ context.Context, titleID uuid.UUID, _, _ int) ([]model.Review, int, error) {
	out := []model.Review{}
	for _, r := range f.reviews {
		if r.TitleID == titleID {
			out = append(out, *r)
		}
	}
	return out, len(out), nil
}

func (f *fakeReviewRepo) UpdateReview(_ context.Context, r *model.Review) error {
	if _, ok := f.reviews[r.ID]; !ok {
		return model.ErrReviewNotFound
	}
	cp := *r
	f.reviews[r.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) DeleteReview(_ context.Context, _, reviewID uuid.UUID) error {
	if _, ok := f.reviews[reviewID]; !ok {
		return model.ErrReviewNotFound
	}
	delete(f.reviews, reviewID)
	return nil
}

func (f *fakeReviewRepo) CreateComment(_ context.Context, c *model.Comment) error {
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) FindCommentByID(_ context.Context, reviewID, commentID uuid.UUID) (*model.Comment, error) {
	c, ok := f.comments[commentID]
	if !ok || c.ReviewID != reviewID {
		return nil, model.ErrCommentNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeReviewRepo) ListComments(_ context.Context, reviewID uuid.UUID, _, _ int) ([]model.Comment, int, error) {
	out := []model.Comment{}
	for _, c := range f.comments {
		if c.ReviewID == reviewID {
			out = append(out, *c)
		}
	}
	return out, len(out), nil
}

func (f *fakeReviewRepo) UpdateComment(_ context.Context, c *model.Comment) error {
	if _, ok := f.comments[c.ID]; !ok {
		return model.ErrCommentNotFound
	}
	cp := *c
	f.comments[c.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) DeleteComment(_ context.Context, _, commentID uuid.UUID) error {
	if _, ok := f.comments[commentID]; !ok {
		return model.ErrCommentNotFound
	}
	delete(f.comments, commentID)
	return nil
}

// fakeTitleRepo only needs Exists for these tests.
type fakeTitleRepo struct {
	existing map[uuid.UUID]bool
}

func (f *fakeTitleRepo) Create(_ context.Context, _ *title.Title, _ []uuid.UUID) error { return nil }
func (f *fakeTitleRepo) Update(_ context.Context, _ *title.Title, _ []uuid.UUID, _ bool) error {
	return nil
}
func (f *fakeTitleRepo) FindByID(_ context.Context, _ uuid.UUID) (*title.TitleDetail, error) {
	return nil, title.ErrTitleNotFound
}
func (f *fakeTitleRepo) List(_ context.Context, _ title.ListFilter, _, _ int) ([]title.TitleDetail, int, error) {
	return nil, 0, nil
}
func (f *fakeTitleRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }
func (f *fakeTitleRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

// ========================================
// SETUP
// ========================================

var (
	alice = Actor{ID: uuid.New(), Username: "alice", Role: user.RoleUser}
	bob   = Actor{ID: uuid.New(), Username: "bob", Role: user.RoleUser}
	mod   = Actor{ID: uuid.New(), Username: "mod", Role: user.RoleModerator}
)

func setupReviewService(t *testing.T) (ReviewService, uuid.UUID) {
	t.Helper()

	titleID := uuid.New()
	titles := &fakeTitleRepo{existing: map[uuid.UUID]bool{titleID: true}}
	return NewReviewService(newFakeReviewRepo(), titles), titleID
}

func mustCreateReview(t *testing.T, svc ReviewService, titleID uuid.UUID, actor Actor) *model.ReviewDTO {
	t.Helper()

	dto, err := svc.CreateReview(context.Background(), titleID, actor, model.CreateReviewRequest{
		Text:  "solid",
		Score: 8,
	})
	require.NoError(t, err)
	return dto
}

// ========================================
// REVIEW TESTS
// ========================================

func TestReviewService_CreateReview(t *testing.T) {
	svc, titleID := setupReviewService(t)

	dto := mustCreateReview(t, svc, titleID, alice)
	assert.Equal(t, "alice", dto.Author)
	assert.Equal(t, 8, dto.Score)
	assert.WithinDuration(t, time.Now(), dto.PubDate, time.Minute)
}

func TestReviewService_CreateReview_SecondReviewRejected(t *testing.T) {
	svc, titleID := setupReviewService(t)

	mustCreateReview(t, svc, titleID, alice)

	_, err := svc.CreateReview(context.Background(), titleID, alice, model.CreateReviewRequest{
		Text:  "changed my mind",
		Score: 2,
	})
	assert.ErrorIs(t, err, model.ErrAlreadyReviewed)
}

func TestReviewService_CreateReview_ScoreOutOfRange(t *testing.T) {
	svc, titleID := setupReviewService(t)

	for _, score := range []int{0, 11} {
		_, err := svc.CreateReview(context.Background(), titleID, alice, model.CreateReviewRequest{
			Text:  "text",
			Score: score,
		})
		require.Error(t, err)

		var vErrs validation.Errors
		require.ErrorAs(t, err, &vErrs)
		require.Contains(t, vErrs, "score")
		assert.Equal(t, "score must be between 1 and 10", vErrs["score"].Error())
	}
}

func TestReviewService_UpdateReview_ScoreOutOfRange(t *testing.T) {
	svc, titleID := setupReviewService(t)

	created := mustCreateReview(t, svc, titleID, alice)
	reviewID := uuid.MustParse(created.ID)

	for _, score := range []int{0, 11} {
		bad := score
		_, err := svc.UpdateReview(context.Background(), titleID, reviewID, alice, model.UpdateReviewRequest{
			Score: &bad,
		})
		require.Error(t, err)

		var vErrs validation.Errors
		require.ErrorAs(t, err, &vErrs)
		require.Contains(t, vErrs, "score")
		assert.Equal(t, "score must be between 1 and 10", vErrs["score"].Error())
	}
}

func TestReviewService_CreateReview_MissingTitle(t *testing.T) {
	svc, _ := setupReviewService(t)

	_, err := svc.CreateReview(context.Background(), uuid.New(), alice, model.CreateReviewRequest{
		Text:  "text",
		Score: 5,
	})
	assert.ErrorIs(t, err, title.ErrTitleNotFound)
}

func TestReviewService_UpdateReview_OtherUserForbidden(t *testing.T) {
	svc, titleID := setupReviewService(t)

	created := mustCreateReview(t, svc, titleID, alice)
	reviewID := uuid.MustParse(created.ID)

	newText := "overwritten"
	_, err := svc.UpdateReview(context.Background(), titleID, reviewID, bob, model.UpdateReviewRequest{
		Text: &newText,
	})
	assert.ErrorIs(t, err, model.ErrNotOwner)
}

func TestReviewService_UpdateReview_ModeratorAllowed(t *testing.T) {
	svc, titleID := setupReviewService(t)

	created := mustCreateReview(t, svc, titleID, alice)
	reviewID := uuid.MustParse(created.ID)

	newText := "toned down"
	dto, err := svc.UpdateReview(context.Background(), titleID, reviewID, mod, model.UpdateReviewRequest{
		Text: &newText,
	})
	require.NoError(t, err)

	assert.Equal(t, "toned down", dto.Text)
	assert.Equal(t, "alice", dto.Author)
}

func TestReviewService_DeleteReview_AuthorAllowed(t *testing.T) {
	svc, titleID := setupReviewService(t)

	created := mustCreateReview(t, svc, titleID, alice)
	reviewID := uuid.MustParse(created.ID)

	require.NoError(t, svc.DeleteReview(context.Background(), titleID, reviewID, alice))

	_, err := svc.GetReview(context.Background(), titleID, reviewID)
	assert.ErrorIs(t, err, model.ErrReviewNotFound)
}

// ========================================
// COMMENT TESTS
// ========================================

func TestReviewService_CreateComment(t *testing.T) {
	svc, titleID := setupReviewService(t)

	created := mustCreateReview(t, svc, titleID, alice)
	reviewID := uuid.MustParse(created.ID)

	dto, err := svc.CreateComment(context.Background(), titleID, reviewID, bob, model.CreateCommentRequest{
		Text: "agreed",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", dto.Author)
}

func TestReviewService_CreateComment_WrongTitle(t *testing.T) {
	svc, titleID := setupReviewService(t)

	created := mustCreateReview(t, svc, titleID, alice)
	reviewID := uuid.MustParse(created.ID)

	_, err := svc.CreateComment(context.Background(), uuid.New(), reviewID, bob, model.CreateCommentRequest{
		Text: "lost",
	})
	assert.ErrorIs(t, err, title.ErrTitleNotFound)
}

func TestReviewService_DeleteComment_OwnerOnly(t *testing.T) {
	svc, titleID := setupReviewService(t)

	created := mustCreateReview(t, svc, titleID, alice)
	reviewID := uuid.MustParse(created.ID)

	comment, err := svc.CreateComment(context.Background(), titleID, reviewID, bob, model.CreateCommentRequest{
		Text: "mine",
	})
	require.NoError(t, err)
	commentID := uuid.MustParse(comment.ID)

	err = svc.DeleteComment(context.Background(), titleID, reviewID, commentID, alice)
	assert.ErrorIs(t, err, model.ErrNotOwner)

	err = svc.DeleteComment(context.Background(), titleID, reviewID, commentID, mod)
	assert.NoError(t, err)
}
