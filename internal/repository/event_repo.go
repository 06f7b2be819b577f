package repository

import (
	"context"
	"time"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Add(ctx context.Context, e *domain.Event) error {
	m := eventModel{
		EventTime: time.UnixMilli(e.Timestamp).UTC(),
		EventType: string(e.EventType),
		Operation: string(e.Operation),
		UserID:    e.UserID,
		EntityID:  e.EntityID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	e.ID = m.ID
	return nil
}

// FindByUser returns the user's events in insertion order.
func (r *EventRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Event, error) {
	var rows []eventModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("event_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Event{
			ID:        m.ID,
			Timestamp: m.EventTime.UnixMilli(),
			EventType: domain.EventType(m.EventType),
			Operation: domain.Operation(m.Operation),
			UserID:    m.UserID,
			EntityID:  m.EntityID,
		})
	}
	return out, nil
}
