package catalog

import (
	"context"

	"filmorate/internal/domain"
)

// GenreStore reads the fixed genre dictionary.
type GenreStore interface {
	GetAll(ctx context.Context) ([]domain.Genre, error)
	GetByID(ctx context.Context, id int64) (*domain.Genre, error)
}

// MpaStore reads the fixed MPA rating dictionary.
type MpaStore interface {
	GetAll(ctx context.Context) ([]domain.Mpa, error)
	GetByID(ctx context.Context, id int64) (*domain.Mpa, error)
}

// DirectorStore manages the editable director dictionary.
type DirectorStore interface {
	Create(ctx context.Context, d *domain.Director) error
	Update(ctx context.Context, d *domain.Director) error
	GetByID(ctx context.Context, id int64) (*domain.Director, error)
	GetAll(ctx context.Context) ([]domain.Director, error)
	Delete(ctx context.Context, id int64) error
}
