package domain

// Review of a film by a user. Useful is the net (likes - dislikes)
// tally over the per-user grade table; it is derived, never set by
// clients.
type Review struct {
	ID         int64  `json:"reviewId"`
	Content    string `json:"content"`
	IsPositive bool   `json:"isPositive"`
	UserID     int64  `json:"userId"`
	FilmID     int64  `json:"filmId"`
	Useful     int    `json:"useful"`
}
