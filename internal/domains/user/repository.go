package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository defines the data access contract for the user directory.
// Soft-deleted users are invisible to every method.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrUsernameTaken / ErrEmailTaken on unique violations.
	Create(ctx context.Context, user *User) error

	// FindByID returns ErrUserNotFound when absent
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername returns ErrUserNotFound when absent
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByEmail returns ErrUserNotFound when absent
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Update persists mutable fields.
	// Returns ErrUserNotFound or ErrEmailTaken.
	Update(ctx context.Context, user *User) error

	// SoftDelete marks the user deleted, keeping the row
	SoftDelete(ctx context.Context, username string) error

	// List returns a directory page filtered by username substring
	List(ctx context.Context, req ListUsersRequest) ([]User, int, error)
}

// CodeStore tracks the currently valid confirmation code id per username.
// Implemented by the Redis adapter in internal/infrastructure/cache.
type CodeStore interface {
	Save(ctx context.Context, username, jti string, ttl time.Duration) error
	// Get returns "" when no code is pending
	Get(ctx context.Context, username string) (string, error)
	Delete(ctx context.Context, username string) error
}
