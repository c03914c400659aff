package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"yamdb-backend/internal/shared/validate"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, validate.NameMaxLength)),
		validation.Field(&r.Slug, validate.Slug()...),
	)
}

type ListCategoriesRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

func (r *ListCategoriesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

type CategoryDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ListCategoriesResponse struct {
	Categories []CategoryDTO `json:"categories"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}
