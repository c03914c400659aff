package user

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the business logic contract for signup, token issuance and
// directory management.
type Service interface {
	// Auth
	Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error)
	ObtainToken(ctx context.Context, req ObtainTokenRequest) (*TokenResponse, error)

	// Self-service profile
	GetMe(ctx context.Context, userID uuid.UUID) (*UserDTO, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req UpdateMeRequest) (*UserDTO, error)

	// Admin directory management
	List(ctx context.Context, req ListUsersRequest) (*ListUsersResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error)
	GetByUsername(ctx context.Context, username string) (*UserDTO, error)
	Update(ctx context.Context, username string, req UpdateUserRequest) (*UserDTO, error)
	Delete(ctx context.Context, username string) error
}
