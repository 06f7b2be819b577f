package domain

// User is an account in the catalog. Friends maps a friend's id to the
// mutual flag: true once both sides have confirmed, false while the
// relation is a one-way request.
type User struct {
	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	Login    string         `json:"login"`
	Name     string         `json:"name"`
	Birthday Date           `json:"birthday"`
	Friends  map[int64]bool `json:"friends,omitempty"`
}
