package film

import "errors"

var (
	ErrNotFound      = errors.New("film not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrGenreNotFound = errors.New("film genre not found in the catalog")
	ErrMpaNotFound   = errors.New("mpa rating not found in the catalog")
	ErrIDForbidden   = errors.New("id must not be set before creation")
	ErrIDRequired    = errors.New("film id is required")
	ErrInvalidCount  = errors.New("count must be greater than zero")
)
