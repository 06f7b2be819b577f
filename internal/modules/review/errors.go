package review

import "errors"

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrFilmNotFound   = errors.New("film not found")
)
