package review

import (
	"context"

	"filmorate/internal/domain"
)

type ReviewStore interface {
	Create(ctx context.Context, rv *domain.Review) error
	Update(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filmID int64, count int) ([]domain.Review, error)
	SetGrade(ctx context.Context, reviewID, userID int64, grade int) error
	RemoveGrade(ctx context.Context, reviewID, userID int64) error
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type FilmGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Film, error)
}

type EventRecorder interface {
	Record(ctx context.Context, userID, entityID int64, t domain.EventType, op domain.Operation) error
}
