package service

import (
	"context"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"yamdb-backend/internal/domains/user"
	"yamdb-backend/internal/infrastructure/email"
	"yamdb-backend/pkg/jwt"
)

// userService implements user.Service
type userService struct {
	repo    user.Repository
	codes   user.CodeStore
	tokens  *jwt.Manager
	mail    email.EmailService
	codeTTL time.Duration
}

// NewUserService wires the signup/token issuer and directory logic.
// Dependencies are injected through the constructor.
func NewUserService(
	repo user.Repository,
	codes user.CodeStore,
	tokens *jwt.Manager,
	mail email.EmailService,
	codeTTL time.Duration,
) user.Service {
	return &userService{
		repo:    repo,
		codes:   codes,
		tokens:  tokens,
		mail:    mail,
		codeTTL: codeTTL,
	}
}

// ========================================
// SIGNUP
// ========================================

// Signup issues a confirmation code for an (email, username) pair.
//
// The pair must either match no existing user (a fresh record is created) or
// exactly one existing user (the code is re-sent for it). A pair that
// partially collides with existing records is rejected with field-level
// errors and nothing is written.
func (s *userService) Signup(ctx context.Context, req user.SignupRequest) (*user.SignupResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	byEmail, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && err != user.ErrUserNotFound {
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	byUsername, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil && err != user.ErrUserNotFound {
		return nil, fmt.Errorf("find user by username: %w", err)
	}

	if !sameUser(byEmail, byUsername) {
		errs := validation.Errors{}
		if byEmail != nil {
			errs["email"] = user.ErrEmailTaken
		}
		if byUsername != nil {
			errs["username"] = user.ErrUsernameTaken
		}
		return nil, errs
	}

	u := byEmail
	if u == nil {
		now := time.Now()
		u = &user.User{
			ID:        uuid.New(),
			Username:  req.Username,
			Email:     req.Email,
			Role:      user.RoleUser,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Create(ctx, u); err != nil {
			// A concurrent signup may have claimed the pair between the
			// lookups and the insert; surface it as the same field error.
			if err == user.ErrEmailTaken || err == user.ErrUsernameTaken {
				return nil, validation.Errors{"username": err}
			}
			return nil, fmt.Errorf("create user: %w", err)
		}
	}

	code, jti, err := s.tokens.GenerateConfirmationCode(u.Username)
	if err != nil {
		return nil, fmt.Errorf("generate confirmation code: %w", err)
	}

	// Overwrites any previous code for this username, invalidating it.
	if err := s.codes.Save(ctx, u.Username, jti, s.codeTTL); err != nil {
		return nil, fmt.Errorf("store confirmation code: %w", err)
	}

	// Mail delivery is part of the signup contract: a failure fails the
	// whole request instead of leaving the user without a code.
	err = s.mail.SendConfirmationCode(ctx, email.ConfirmationCodeData{
		Email:     u.Email,
		Username:  u.Username,
		Code:      code,
		ExpiresIn: s.codeTTL.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("send confirmation mail: %w", err)
	}

	return &user.SignupResponse{Email: u.Email, Username: u.Username}, nil
}

// sameUser reports whether both lookups resolved to the same record
// (including the both-absent case).
func sameUser(a, b *user.User) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

// ========================================
// TOKEN
// ========================================

// ObtainToken redeems a confirmation code for a signed access token.
// The code must be structurally valid, unexpired, bound to the requested
// username, and still the current one for that username. Redemption deletes
// the stored code, making it single-use.
func (s *userService) ObtainToken(ctx context.Context, req user.ObtainTokenRequest) (*user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err // ErrUserNotFound -> 404 at the handler
	}

	claims, err := s.tokens.ValidateConfirmationCode(req.ConfirmationCode, u.Username)
	if err != nil {
		return nil, user.ErrInvalidConfirmationCode
	}

	stored, err := s.codes.Get(ctx, u.Username)
	if err != nil {
		return nil, fmt.Errorf("load confirmation code: %w", err)
	}
	if stored == "" || stored != claims.ID {
		return nil, user.ErrInvalidConfirmationCode
	}

	if err := s.codes.Delete(ctx, u.Username); err != nil {
		return nil, fmt.Errorf("consume confirmation code: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(u.ID.String(), u.Username, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.TokenResponse{Token: token}, nil
}

// ========================================
// SELF-SERVICE PROFILE
// ========================================

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// UpdateMe patches the caller's own profile. The role field is not part of
// UpdateMeRequest, so it cannot be escalated here.
func (s *userService) UpdateMe(ctx context.Context, userID uuid.UUID, req user.UpdateMeRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfilePatch(u, req.Email, req.FirstName, req.LastName, req.Bio)

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

// ========================================
// ADMIN DIRECTORY
// ========================================

func (s *userService) List(ctx context.Context, req user.ListUsersRequest) (*user.ListUsersResponse, error) {
	req.Normalize()

	users, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}

	dtos := make([]user.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, users[i].ToDTO())
	}

	return &user.ListUsersResponse{
		Users: dtos,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	}, nil
}

func (s *userService) Create(ctx context.Context, req user.CreateUserRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = user.RoleUser
	}
	if !role.IsValid() {
		return nil, user.ErrInvalidRole
	}

	now := time.Now()
	u := &user.User{
		ID:        uuid.New(),
		Username:  req.Username,
		Email:     req.Email,
		Role:      role,
		Bio:       req.Bio,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*user.UserDTO, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Update(ctx context.Context, username string, req user.UpdateUserRequest) (*user.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	applyProfilePatch(u, req.Email, req.FirstName, req.LastName, req.Bio)
	if req.Role != nil {
		u.Role = *req.Role
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	return s.repo.SoftDelete(ctx, username)
}

func applyProfilePatch(u *user.User, email, firstName, lastName, bio *string) {
	if email != nil {
		u.Email = *email
	}
	if firstName != nil {
		u.FirstName = *firstName
	}
	if lastName != nil {
		u.LastName = *lastName
	}
	if bio != nil {
		u.Bio = *bio
	}
}
