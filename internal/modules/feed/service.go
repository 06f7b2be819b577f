package feed

import (
	"context"
	"errors"
	"time"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type EventStore interface {
	Add(ctx context.Context, e *domain.Event) error
	FindByUser(ctx context.Context, userID int64) ([]domain.Event, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Service is the append-only activity log. Other services record their
// side effects through it; the feed endpoint reads it back per user.
type Service struct {
	events EventStore
	users  UserGate
}

func NewService(events EventStore, users UserGate) *Service {
	return &Service{events: events, users: users}
}

// Record appends one event with a server-assigned timestamp.
func (s *Service) Record(ctx context.Context, userID, entityID int64, t domain.EventType, op domain.Operation) error {
	e := &domain.Event{
		Timestamp: time.Now().UnixMilli(),
		EventType: t,
		Operation: op,
		UserID:    userID,
		EntityID:  entityID,
	}
	return s.events.Add(ctx, e)
}

// Feed returns the user's events in insertion order.
func (s *Service) Feed(ctx context.Context, userID int64) ([]domain.Event, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.events.FindByUser(ctx, userID)
}
