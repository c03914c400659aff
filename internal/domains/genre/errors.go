package genre

import "errors"

var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrSlugTaken     = errors.New("genre with this slug already exists")
)
