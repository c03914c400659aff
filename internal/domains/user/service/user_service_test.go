package service

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yamdb-backend/internal/domains/user"
	"yamdb-backend/internal/infrastructure/email"
	"yamdb-backend/pkg/jwt"
)

// ========================================
// FAKES
// ========================================

type fakeUserRepo struct {
	byID map[uuid.UUID]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]*user.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
		if existing.Username == u.Username {
			return user.ErrUsernameTaken
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := f.byID[id]
	if !ok || u.IsDeleted() {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range f.byID {
		if u.Username == username && !u.IsDeleted() {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range f.byID {
		if u.Email == email && !u.IsDeleted() {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) SoftDelete(_ context.Context, username string) error {
	for _, u := range f.byID {
		if u.Username == username && !u.IsDeleted() {
			now := time.Now()
			u.DeletedAt = &now
			return nil
		}
	}
	return user.ErrUserNotFound
}

func (f *fakeUserRepo) List(_ context.Context, _ user.ListUsersRequest) ([]user.User, int, error) {
	out := []user.User{}
	for _, u := range f.byID {
		if !u.IsDeleted() {
			out = append(out, *u)
		}
	}
	return out, len(out), nil
}

type fakeCodeStore struct {
	codes map[string]string
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: map[string]string{}}
}

func (f *fakeCodeStore) Save(_ context.Context, username, jti string, _ time.Duration) error {
	f.codes[username] = jti
	return nil
}

func (f *fakeCodeStore) Get(_ context.Context, username string) (string, error) {
	return f.codes[username], nil
}

func (f *fakeCodeStore) Delete(_ context.Context, username string) error {
	delete(f.codes, username)
	return nil
}

type fakeMailer struct {
	sent    []email.ConfirmationCodeData
	failure error
}

func (f *fakeMailer) SendConfirmationCode(_ context.Context, data email.ConfirmationCodeData) error {
	if f.failure != nil {
		return f.failure
	}
	f.sent = append(f.sent, data)
	return nil
}

// ========================================
// SETUP
// ========================================

type userServiceFixture struct {
	svc    user.Service
	repo   *fakeUserRepo
	codes  *fakeCodeStore
	mailer *fakeMailer
}

func setupUserService(t *testing.T) *userServiceFixture {
	t.Helper()

	repo := newFakeUserRepo()
	codes := newFakeCodeStore()
	mailer := &fakeMailer{}
	tokens := jwt.NewManager("test-secret", time.Hour, 24*time.Hour)

	return &userServiceFixture{
		svc:    NewUserService(repo, codes, tokens, mailer, 24*time.Hour),
		repo:   repo,
		codes:  codes,
		mailer: mailer,
	}
}

func signup(t *testing.T, fx *userServiceFixture, username, mail string) {
	t.Helper()

	_, err := fx.svc.Signup(context.Background(), user.SignupRequest{
		Email:    mail,
		Username: username,
	})
	require.NoError(t, err)
}

// ========================================
// SIGNUP TESTS
// ========================================

func TestUserService_Signup_CreatesUserAndSendsCode(t *testing.T) {
	fx := setupUserService(t)

	signup(t, fx, "alice", "alice@example.com")

	require.Len(t, fx.mailer.sent, 1)
	assert.Equal(t, "alice@example.com", fx.mailer.sent[0].Email)
	assert.NotEmpty(t, fx.mailer.sent[0].Code)

	u, err := fx.repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, u.Role)
}

func TestUserService_Signup_RepeatReusesUser(t *testing.T) {
	fx := setupUserService(t)

	signup(t, fx, "alice", "alice@example.com")
	signup(t, fx, "alice", "alice@example.com")

	assert.Len(t, fx.mailer.sent, 2)

	users, total, err := fx.repo.List(context.Background(), user.ListUsersRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, users, 1)
}

func TestUserService_Signup_ConflictsNameFields(t *testing.T) {
	fx := setupUserService(t)

	signup(t, fx, "alice", "alice@example.com")

	// Same email, different username.
	_, err := fx.svc.Signup(context.Background(), user.SignupRequest{
		Email:    "alice@example.com",
		Username: "alice2",
	})
	var vErrs validation.Errors
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "email")
	assert.NotContains(t, vErrs, "username")

	// Same username, different email.
	_, err = fx.svc.Signup(context.Background(), user.SignupRequest{
		Email:    "other@example.com",
		Username: "alice",
	})
	require.ErrorAs(t, err, &vErrs)
	assert.Contains(t, vErrs, "username")
}

func TestUserService_Signup_ReservedUsername(t *testing.T) {
	fx := setupUserService(t)

	for _, username := range []string{"me", "ME", "Me"} {
		_, err := fx.svc.Signup(context.Background(), user.SignupRequest{
			Email:    "me@example.com",
			Username: username,
		})
		var vErrs validation.Errors
		require.ErrorAs(t, err, &vErrs)
		assert.Contains(t, vErrs, "username")
	}
}

// Email validation is a pure syntax check: no DNS resolution, so a valid
// address must be accepted even when its domain has no resolvable records.
func TestUserService_Signup_AcceptsUnresolvableDomains(t *testing.T) {
	fx := setupUserService(t)

	pairs := map[string]string{
		"alice": "a@x.com",
		"bob":   "b@x.co",
		"carol": "me@sub.domain.org",
	}
	for username, addr := range pairs {
		_, err := fx.svc.Signup(context.Background(), user.SignupRequest{
			Email:    addr,
			Username: username,
		})
		assert.NoError(t, err, "address %q should be accepted", addr)
	}
}

func TestUserService_Signup_MailFailureFailsRequest(t *testing.T) {
	fx := setupUserService(t)
	fx.mailer.failure = errors.New("smtp down")

	_, err := fx.svc.Signup(context.Background(), user.SignupRequest{
		Email:    "alice@example.com",
		Username: "alice",
	})
	assert.Error(t, err)
}

// ========================================
// TOKEN TESTS
// ========================================

func TestUserService_ObtainToken(t *testing.T) {
	fx := setupUserService(t)

	signup(t, fx, "alice", "alice@example.com")
	code := fx.mailer.sent[0].Code

	resp, err := fx.svc.ObtainToken(context.Background(), user.ObtainTokenRequest{
		Username:         "alice",
		ConfirmationCode: code,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestUserService_ObtainToken_SingleUse(t *testing.T) {
	fx := setupUserService(t)

	signup(t, fx, "alice", "alice@example.com")
	code := fx.mailer.sent[0].Code

	req := user.ObtainTokenRequest{Username: "alice", ConfirmationCode: code}
	_, err := fx.svc.ObtainToken(context.Background(), req)
	require.NoError(t, err)

	_, err = fx.svc.ObtainToken(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrInvalidConfirmationCode)
}

func TestUserService_ObtainToken_ResendInvalidatesOldCode(t *testing.T) {
	fx := setupUserService(t)

	signup(t, fx, "alice", "alice@example.com")
	oldCode := fx.mailer.sent[0].Code

	signup(t, fx, "alice", "alice@example.com")
	newCode := fx.mailer.sent[1].Code

	_, err := fx.svc.ObtainToken(context.Background(), user.ObtainTokenRequest{
		Username:         "alice",
		ConfirmationCode: oldCode,
	})
	assert.ErrorIs(t, err, user.ErrInvalidConfirmationCode)

	_, err = fx.svc.ObtainToken(context.Background(), user.ObtainTokenRequest{
		Username:         "alice",
		ConfirmationCode: newCode,
	})
	assert.NoError(t, err)
}

func TestUserService_ObtainToken_CodeBoundToUser(t *testing.T) {
	fx := setupUserService(t)

	signup(t, fx, "alice", "alice@example.com")
	signup(t, fx, "bob", "bob@example.com")
	aliceCode := fx.mailer.sent[0].Code

	_, err := fx.svc.ObtainToken(context.Background(), user.ObtainTokenRequest{
		Username:         "bob",
		ConfirmationCode: aliceCode,
	})
	assert.ErrorIs(t, err, user.ErrInvalidConfirmationCode)
}

func TestUserService_ObtainToken_UnknownUser(t *testing.T) {
	fx := setupUserService(t)

	_, err := fx.svc.ObtainToken(context.Background(), user.ObtainTokenRequest{
		Username:         "ghost",
		ConfirmationCode: "whatever",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

// ========================================
// DIRECTORY TESTS
// ========================================

func TestUserService_Create_DefaultsToUserRole(t *testing.T) {
	fx := setupUserService(t)

	dto, err := fx.svc.Create(context.Background(), user.CreateUserRequest{
		Email:    "carol@example.com",
		Username: "carol",
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleUser, dto.Role)
}

func TestUserService_Update_CanChangeRole(t *testing.T) {
	fx := setupUserService(t)

	_, err := fx.svc.Create(context.Background(), user.CreateUserRequest{
		Email:    "carol@example.com",
		Username: "carol",
	})
	require.NoError(t, err)

	mod := user.RoleModerator
	dto, err := fx.svc.Update(context.Background(), "carol", user.UpdateUserRequest{Role: &mod})
	require.NoError(t, err)
	assert.Equal(t, user.RoleModerator, dto.Role)
}

func TestUserService_Delete_HidesUser(t *testing.T) {
	fx := setupUserService(t)

	_, err := fx.svc.Create(context.Background(), user.CreateUserRequest{
		Email:    "carol@example.com",
		Username: "carol",
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.Delete(context.Background(), "carol"))

	_, err = fx.svc.GetByUsername(context.Background(), "carol")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
