package domain

// Film with its rating, attribute sets and the ids of users who liked
// it. Genres and Directors are kept deduplicated; Likes mirrors the
// likes_film join table.
type Film struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	ReleaseDate Date       `json:"releaseDate"`
	Duration    int        `json:"duration"`
	Mpa         Mpa        `json:"mpa"`
	Genres      []Genre    `json:"genres"`
	Directors   []Director `json:"directors"`
	Likes       []int64    `json:"likes,omitempty"`
}

func (f *Film) LikeCount() int { return len(f.Likes) }

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Mpa struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Director struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
