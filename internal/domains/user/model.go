package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the domain entity, mapped 1:1 to the users table.
type User struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"`
	Email    string    `db:"email" json:"email"`

	// Authorization
	Role Role `db:"role" json:"role"`

	// Profile
	Bio       string `db:"bio" json:"bio"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`

	// Timestamps
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"` // Soft delete
}

// Role enum - exactly three roles
type Role string

const (
	RoleUser      Role = "user"      // Regular user
	RoleModerator Role = "moderator" // Can edit or remove any review/comment
	RoleAdmin     Role = "admin"     // Full system access
)

// AllRoles returns all valid roles
func AllRoles() []Role {
	return []Role{RoleUser, RoleModerator, RoleAdmin}
}

// IsValid reports whether the role is one of the known values
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

// String implements Stringer interface
func (r Role) String() string {
	return string(r)
}

// IsDeleted reports whether the user has been soft deleted
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// ToDTO converts the entity to its API representation
func (u *User) ToDTO() UserDTO {
	return UserDTO{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
		Role:      u.Role,
	}
}
