package film

import "filmorate/internal/domain"

type idRef struct {
	ID int64 `json:"id" validate:"required"`
}

// FilmRequest carries both create (ID zero) and update (ID set)
// payloads; genres and directors arrive as id references and are
// resolved against the lookup tables on write.
type FilmRequest struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Description string      `json:"description" validate:"max=200"`
	ReleaseDate domain.Date `json:"releaseDate" validate:"required,releasedate"`
	Duration    int         `json:"duration" validate:"required,gt=0"`
	Mpa         idRef       `json:"mpa" validate:"required"`
	Genres      []idRef     `json:"genres"`
	Directors   []idRef     `json:"directors"`
}

func (r FilmRequest) toFilm() *domain.Film {
	f := &domain.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		Duration:    r.Duration,
		Mpa:         domain.Mpa{ID: r.Mpa.ID},
	}
	for _, g := range r.Genres {
		f.Genres = append(f.Genres, domain.Genre{ID: g.ID})
	}
	for _, d := range r.Directors {
		f.Directors = append(f.Directors, domain.Director{ID: d.ID})
	}
	return f
}
