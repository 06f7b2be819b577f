package review

type CreateReviewRequest struct {
	Content    string `json:"content" validate:"required"`
	IsPositive *bool  `json:"isPositive" validate:"required"`
	UserID     int64  `json:"userId" validate:"required"`
	FilmID     int64  `json:"filmId" validate:"required"`
}

type UpdateReviewRequest struct {
	ID         int64  `json:"reviewId" validate:"required"`
	Content    string `json:"content" validate:"required"`
	IsPositive *bool  `json:"isPositive" validate:"required"`
}
