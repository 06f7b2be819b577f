package film

import (
	"context"

	"filmorate/internal/domain"
	"filmorate/internal/repository"
)

type FilmStore interface {
	Create(ctx context.Context, f *domain.Film) error
	Update(ctx context.Context, f *domain.Film) error
	GetByID(ctx context.Context, id int64) (*domain.Film, error)
	GetAll(ctx context.Context) ([]domain.Film, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Film, error)
	Delete(ctx context.Context, id int64) error
	AddLike(ctx context.Context, filmID, userID int64) error
	RemoveLike(ctx context.Context, filmID, userID int64) error
	LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error)
	Popular(ctx context.Context, filter repository.PopularFilter) ([]domain.Film, error)
	Search(ctx context.Context, query, by string) ([]domain.Film, error)
	ByDirector(ctx context.Context, directorID int64, sortBy string) ([]domain.Film, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type EventRecorder interface {
	Record(ctx context.Context, userID, entityID int64, t domain.EventType, op domain.Operation) error
}
