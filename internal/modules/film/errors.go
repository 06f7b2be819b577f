package film

import "errors"

var (
	ErrFilmNotFound     = errors.New("film not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrDirectorNotFound = errors.New("director has no films")
	ErrAttributeUnknown = errors.New("unknown genre, mpa or director id")
	ErrInvalidSearchBy  = errors.New("invalid searchBy value")
	ErrInvalidSortBy    = errors.New("invalid sortBy value")
)
