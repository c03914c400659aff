package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"yamdb-backend/internal/shared/validate"
)

// ========================================
// AUTH DTOs
// ========================================

// SignupRequest asks for a confirmation code to be mailed
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(5, validate.EmailMaxLength),
		),
		validation.Field(&r.Username, validate.Username()...),
	)
}

// SignupResponse echoes the pair the code was issued for
type SignupResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// ObtainTokenRequest exchanges a confirmation code for an access token
type ObtainTokenRequest struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (r ObtainTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.ConfirmationCode, validation.Required),
	)
}

// TokenResponse carries the signed access token
type TokenResponse struct {
	Token string `json:"token"`
}

// ========================================
// DIRECTORY DTOs
// ========================================

// UserDTO is the API representation of a user
type UserDTO struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      Role   `json:"role"`
}

// CreateUserRequest - admin creates a user directly
type CreateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
	Role      Role   `json:"role"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("invalid email format"),
			validation.Length(5, validate.EmailMaxLength),
		),
		validation.Field(&r.Username, validate.Username()...),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Role,
			validation.In(RoleUser, RoleModerator, RoleAdmin).Error("role must be one of: user, moderator, admin"),
		),
	)
}

// UpdateUserRequest - admin patches any field, all optional
type UpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *Role   `json:"role"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil,
				is.EmailFormat.Error("invalid email format"),
				validation.Length(5, validate.EmailMaxLength),
			),
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Role,
			validation.When(r.Role != nil,
				validation.In(RoleUser, RoleModerator, RoleAdmin).Error("role must be one of: user, moderator, admin"),
			),
		),
	)
}

// UpdateMeRequest - self-service profile update, role deliberately absent
type UpdateMeRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
}

func (r UpdateMeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil,
				is.EmailFormat.Error("invalid email format"),
				validation.Length(5, validate.EmailMaxLength),
			),
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
	)
}

// ListUsersRequest - admin directory listing
type ListUsersRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r *ListUsersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

// ListUsersResponse - paginated directory page
type ListUsersResponse struct {
	Users []UserDTO `json:"users"`
	Total int       `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}
