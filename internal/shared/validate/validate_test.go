package validate

import (
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
)

func validateUsername(s string) error {
	return validation.Validate(s, Username()...)
}

func validateSlug(s string) error {
	return validation.Validate(s, Slug()...)
}

func TestUsernameReservedWord(t *testing.T) {
	for _, name := range []string{"me", "ME", "Me", "mE"} {
		assert.Error(t, validateUsername(name), "username %q must be rejected", name)
	}
}

func TestUsernamePattern(t *testing.T) {
	valid := []string{"alice", "bob_42", "first.last", "user@host", "x+y", "a-b"}
	for _, name := range valid {
		assert.NoError(t, validateUsername(name), "username %q should be valid", name)
	}

	invalid := []string{"", "with space", "has#hash", "semi;colon", "двойник?"}
	for _, name := range invalid {
		assert.Error(t, validateUsername(name), "username %q should be invalid", name)
	}
}

func TestUsernameLength(t *testing.T) {
	long := make([]byte, UsernameMaxLength+1)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, validateUsername(string(long)))
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"books", "sci-fi", "old_school", "top100"}
	for _, slug := range valid {
		assert.NoError(t, validateSlug(slug), "slug %q should be valid", slug)
	}

	invalid := []string{"", "with space", "ru/slash", "dot.dot"}
	for _, slug := range invalid {
		assert.Error(t, validateSlug(slug), "slug %q should be invalid", slug)
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("sci-fi"))
	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("with space"))
}
