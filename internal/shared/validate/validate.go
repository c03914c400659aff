// Package validate holds the validation rules shared by every place a
// username or slug is accepted: signup, the user directory, and the catalog.
package validate

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	UsernameMaxLength = 150
	EmailMaxLength    = 254
	SlugMaxLength     = 50
	NameMaxLength     = 256

	// ReservedUsername collides with the /users/me endpoint and is rejected
	// in any casing.
	ReservedUsername = "me"
)

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	slugPattern     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

	ErrReservedUsername = errors.New("username \"me\" is reserved")
)

// Username returns the rule set for a username field.
func Username() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("username is required"),
		validation.Length(1, UsernameMaxLength),
		validation.Match(usernamePattern).Error("username may contain only letters, digits and @/./+/-/_"),
		validation.By(notReserved),
	}
}

// Slug returns the rule set for a category/genre slug field.
func Slug() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("slug is required"),
		validation.Length(1, SlugMaxLength),
		validation.Match(slugPattern).Error("slug may contain only letters, digits, hyphens and underscores"),
	}
}

// SlugOptional is Slug without the presence requirement, for patch and
// filter fields where the slug may be absent.
func SlugOptional() []validation.Rule {
	return []validation.Rule{
		validation.Length(1, SlugMaxLength),
		validation.Match(slugPattern).Error("slug may contain only letters, digits, hyphens and underscores"),
	}
}

func notReserved(value interface{}) error {
	s, _ := value.(string)
	if strings.EqualFold(s, ReservedUsername) {
		return ErrReservedUsername
	}
	return nil
}

// IsValidSlug reports whether s matches the slug pattern. Used by route
// handlers before hitting the repository.
func IsValidSlug(s string) bool {
	return s != "" && len(s) <= SlugMaxLength && slugPattern.MatchString(s)
}
