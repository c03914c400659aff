package title

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"yamdb-backend/internal/shared/validate"
)

// ========================================
// REQUEST DTOs
// ========================================

type CreateTitleRequest struct {
	Name        string   `json:"name"`
	Year        int      `json:"year"`
	Description string   `json:"description"`
	Genre       []string `json:"genre"`
	Category    string   `json:"category"`
}

func (r CreateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, validate.NameMaxLength)),
		validation.Field(&r.Year, validation.Required, validation.Max(time.Now().Year())),
		validation.Field(&r.Genre, validation.Required, validation.Each(validate.Slug()...)),
		validation.Field(&r.Category, validate.Slug()...),
	)
}

// UpdateTitleRequest carries a partial patch. Nil fields are left unchanged;
// a non-nil Genre replaces the whole genre set.
type UpdateTitleRequest struct {
	Name        *string  `json:"name"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre"`
	Category    *string  `json:"category"`
}

func (r UpdateTitleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Length(1, validate.NameMaxLength)),
		validation.Field(&r.Year, validation.Max(time.Now().Year())),
		validation.Field(&r.Genre, validation.Each(validate.Slug()...)),
		validation.Field(&r.Category, validate.SlugOptional()...),
	)
}

type ListTitlesRequest struct {
	Name     string `form:"name"`
	Year     int    `form:"year"`
	Category string `form:"category"`
	Genre    string `form:"genre"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r *ListTitlesRequest) Normalize() {
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

type TitleDTO struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Year        int          `json:"year"`
	Rating      *float64     `json:"rating"`
	Description string       `json:"description"`
	Genre       []GenreRef   `json:"genre"`
	Category    *CategoryRef `json:"category"`
}

type ListTitlesResponse struct {
	Titles []TitleDTO `json:"titles"`
	Total  int        `json:"total"`
	Page   int        `json:"page"`
	Limit  int        `json:"limit"`
}
