package feed

import (
	"context"
	"testing"

	"filmorate/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Add(ctx context.Context, e *domain.Event) error {
	args := m.Called(ctx, e)
	if e != nil {
		e.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockEventStore) FindByUser(ctx context.Context, userID int64) ([]domain.Event, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Event), args.Error(1)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestService_Record_AssignsTimestamp(t *testing.T) {
	events := new(MockEventStore)
	events.On("Add", mock.Anything, mock.MatchedBy(func(e *domain.Event) bool {
		return e.Timestamp > 0 &&
			e.EventType == domain.EventLike &&
			e.Operation == domain.OpAdd &&
			e.UserID == 7 && e.EntityID == 3
	})).Return(nil)

	svc := NewService(events, new(MockUserGate))

	err := svc.Record(context.Background(), 7, 3, domain.EventLike, domain.OpAdd)

	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestService_Feed_UnknownUser(t *testing.T) {
	users := new(MockUserGate)
	users.On("GetByID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(MockEventStore), users)

	_, err := svc.Feed(context.Background(), 7)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Feed_ReturnsEvents(t *testing.T) {
	events := new(MockEventStore)
	users := new(MockUserGate)
	users.On("GetByID", mock.Anything, int64(7)).Return(&domain.User{ID: 7}, nil)
	events.On("FindByUser", mock.Anything, int64(7)).Return([]domain.Event{
		{ID: 1, EventType: domain.EventFriend, Operation: domain.OpAdd, UserID: 7, EntityID: 2},
	}, nil)

	svc := NewService(events, users)

	feed, err := svc.Feed(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, int64(2), feed[0].EntityID)
}
