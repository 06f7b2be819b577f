package user

import (
	"context"

	"filmorate/internal/domain"
	"filmorate/internal/repository"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
	Friends(ctx context.Context, userID int64) (map[int64]bool, error)
	AddFriend(ctx context.Context, userID, friendID int64) error
	RemoveFriend(ctx context.Context, userID, friendID int64) error
}

// FilmGate is the slice of the film storage the recommendation
// computation needs.
type FilmGate interface {
	LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error)
	LikesForFilms(ctx context.Context, filmIDs []int64) ([]repository.LikeRow, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Film, error)
}

type EventRecorder interface {
	Record(ctx context.Context, userID, entityID int64, t domain.EventType, op domain.Operation) error
}
