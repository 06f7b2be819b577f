package catalog

import "errors"

var (
	ErrGenreNotFound    = errors.New("genre not found")
	ErrMpaNotFound      = errors.New("mpa rating not found")
	ErrDirectorNotFound = errors.New("director not found")
)
