package catalog

import (
	"context"
	"errors"
	"log"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// Service serves the film reference dictionaries: genres and MPA
// ratings are seeded and read-only, directors are fully editable.
type Service struct {
	genres    GenreStore
	mpa       MpaStore
	directors DirectorStore
}

func NewService(genres GenreStore, mpa MpaStore, directors DirectorStore) *Service {
	return &Service{genres: genres, mpa: mpa, directors: directors}
}

func (s *Service) Genres(ctx context.Context) ([]domain.Genre, error) {
	return s.genres.GetAll(ctx)
}

func (s *Service) Genre(ctx context.Context, id int64) (*domain.Genre, error) {
	g, err := s.genres.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGenreNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) MpaRatings(ctx context.Context) ([]domain.Mpa, error) {
	return s.mpa.GetAll(ctx)
}

func (s *Service) MpaRating(ctx context.Context, id int64) (*domain.Mpa, error) {
	m, err := s.mpa.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMpaNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *Service) Directors(ctx context.Context) ([]domain.Director, error) {
	return s.directors.GetAll(ctx)
}

func (s *Service) Director(ctx context.Context, id int64) (*domain.Director, error) {
	d, err := s.directors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDirectorNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) CreateDirector(ctx context.Context, req DirectorRequest) (*domain.Director, error) {
	d := &domain.Director{Name: req.Name}
	if err := s.directors.Create(ctx, d); err != nil {
		return nil, err
	}
	log.Printf("director_created id=%d", d.ID)
	return d, nil
}

func (s *Service) UpdateDirector(ctx context.Context, req DirectorRequest) (*domain.Director, error) {
	d := &domain.Director{ID: req.ID, Name: req.Name}
	if err := s.directors.Update(ctx, d); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDirectorNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *Service) DeleteDirector(ctx context.Context, id int64) error {
	if err := s.directors.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDirectorNotFound
		}
		return err
	}
	log.Printf("director_deleted id=%d", id)
	return nil
}
