package user

import (
	"context"
	"testing"

	"filmorate/internal/domain"
	"filmorate/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserStore) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserStore) GetAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserStore) Friends(ctx context.Context, userID int64) (map[int64]bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]bool), args.Error(1)
}

func (m *MockUserStore) AddFriend(ctx context.Context, userID, friendID int64) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

func (m *MockUserStore) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	args := m.Called(ctx, userID, friendID)
	return args.Error(0)
}

type MockFilmGate struct {
	mock.Mock
}

func (m *MockFilmGate) LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockFilmGate) LikesForFilms(ctx context.Context, filmIDs []int64) ([]repository.LikeRow, error) {
	args := m.Called(ctx, filmIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LikeRow), args.Error(1)
}

func (m *MockFilmGate) ListByIDs(ctx context.Context, ids []int64) ([]domain.Film, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
}

type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) Record(ctx context.Context, userID, entityID int64, t domain.EventType, op domain.Operation) error {
	args := m.Called(ctx, userID, entityID, t, op)
	return args.Error(0)
}

func stubUser(id int64) *domain.User {
	return &domain.User{ID: id, Email: "u@mail.kz", Login: "login", Name: "name"}
}

func TestService_Create_BlankNameFallsBackToLogin(t *testing.T) {
	store := new(MockUserStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, new(MockFilmGate), new(MockEventRecorder))

	u, err := svc.Create(context.Background(), CreateUserRequest{
		Email:    "asel@mail.kz",
		Login:    "asel",
		Name:     "   ",
		Birthday: domain.NewDate(1995, 3, 14),
	})

	assert.NoError(t, err)
	assert.Equal(t, "asel", u.Name)
	assert.Equal(t, int64(999), u.ID)
	store.AssertExpectations(t)
}

func TestService_Update_UnknownUser(t *testing.T) {
	store := new(MockUserStore)
	store.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	svc := NewService(store, new(MockFilmGate), new(MockEventRecorder))

	_, err := svc.Update(context.Background(), UpdateUserRequest{
		ID:       42,
		Email:    "asel@mail.kz",
		Login:    "asel",
		Birthday: domain.NewDate(1995, 3, 14),
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_AddFriend_Self(t *testing.T) {
	svc := NewService(new(MockUserStore), new(MockFilmGate), new(MockEventRecorder))

	err := svc.AddFriend(context.Background(), 7, 7)

	assert.ErrorIs(t, err, ErrSelfFriend)
}

func TestService_AddFriend_RecordsEvent(t *testing.T) {
	store := new(MockUserStore)
	events := new(MockEventRecorder)
	store.On("GetByID", mock.Anything, int64(1)).Return(stubUser(1), nil)
	store.On("GetByID", mock.Anything, int64(2)).Return(stubUser(2), nil)
	store.On("AddFriend", mock.Anything, int64(1), int64(2)).Return(nil)
	events.On("Record", mock.Anything, int64(1), int64(2), domain.EventFriend, domain.OpAdd).Return(nil)

	svc := NewService(store, new(MockFilmGate), events)

	err := svc.AddFriend(context.Background(), 1, 2)

	assert.NoError(t, err)
	store.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestService_AddFriend_UnknownFriend(t *testing.T) {
	store := new(MockUserStore)
	store.On("GetByID", mock.Anything, int64(1)).Return(stubUser(1), nil)
	store.On("GetByID", mock.Anything, int64(2)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, new(MockFilmGate), new(MockEventRecorder))

	err := svc.AddFriend(context.Background(), 1, 2)

	assert.ErrorIs(t, err, ErrUserNotFound)
	store.AssertNotCalled(t, "AddFriend", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RemoveFriend_RecordsEvent(t *testing.T) {
	store := new(MockUserStore)
	events := new(MockEventRecorder)
	store.On("GetByID", mock.Anything, int64(1)).Return(stubUser(1), nil)
	store.On("GetByID", mock.Anything, int64(2)).Return(stubUser(2), nil)
	store.On("RemoveFriend", mock.Anything, int64(1), int64(2)).Return(nil)
	events.On("Record", mock.Anything, int64(1), int64(2), domain.EventFriend, domain.OpRemove).Return(nil)

	svc := NewService(store, new(MockFilmGate), events)

	err := svc.RemoveFriend(context.Background(), 1, 2)

	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestService_CommonFriends(t *testing.T) {
	store := new(MockUserStore)
	store.On("GetByID", mock.Anything, int64(1)).Return(stubUser(1), nil)
	store.On("GetByID", mock.Anything, int64(2)).Return(stubUser(2), nil)
	store.On("Friends", mock.Anything, int64(1)).Return(map[int64]bool{3: true, 4: false}, nil)
	store.On("Friends", mock.Anything, int64(2)).Return(map[int64]bool{4: true, 5: false}, nil)
	store.On("GetByIDs", mock.Anything, []int64{3, 4}).Return([]domain.User{*stubUser(3), *stubUser(4)}, nil)
	store.On("GetByIDs", mock.Anything, []int64{4, 5}).Return([]domain.User{*stubUser(4), *stubUser(5)}, nil)

	svc := NewService(store, new(MockFilmGate), new(MockEventRecorder))

	common, err := svc.CommonFriends(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Len(t, common, 1)
	assert.Equal(t, int64(4), common[0].ID)
}

func TestService_Recommendations_NoLikes(t *testing.T) {
	store := new(MockUserStore)
	films := new(MockFilmGate)
	store.On("GetByID", mock.Anything, int64(1)).Return(stubUser(1), nil)
	films.On("LikedFilmIDs", mock.Anything, int64(1)).Return([]int64{}, nil)

	svc := NewService(store, films, new(MockEventRecorder))

	recs, err := svc.Recommendations(context.Background(), 1)

	assert.NoError(t, err)
	assert.Empty(t, recs)
	films.AssertNotCalled(t, "LikesForFilms", mock.Anything, mock.Anything)
}

func TestService_Recommendations_NeighbourOverlap(t *testing.T) {
	// User 1 liked films 1 and 2; user 2 liked 1, 2 and 3. Film 3 is
	// the only unseen film of the closest neighbour.
	store := new(MockUserStore)
	films := new(MockFilmGate)
	store.On("GetByID", mock.Anything, int64(1)).Return(stubUser(1), nil)
	films.On("LikedFilmIDs", mock.Anything, int64(1)).Return([]int64{1, 2}, nil)
	films.On("LikesForFilms", mock.Anything, []int64{1, 2}).Return([]repository.LikeRow{
		{FilmID: 1, UserID: 1},
		{FilmID: 2, UserID: 1},
		{FilmID: 1, UserID: 2},
		{FilmID: 2, UserID: 2},
	}, nil)
	films.On("LikedFilmIDs", mock.Anything, int64(2)).Return([]int64{1, 2, 3}, nil)
	films.On("ListByIDs", mock.Anything, []int64{3}).Return([]domain.Film{{ID: 3, Name: "Третий"}}, nil)

	svc := NewService(store, films, new(MockEventRecorder))

	recs, err := svc.Recommendations(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, recs, 1)
	assert.Equal(t, int64(3), recs[0].ID)
}

func TestService_Recommendations_RanksByNeighbourWeight(t *testing.T) {
	// Neighbour 2 overlaps on two films, neighbour 3 on one. Film 4 is
	// liked only by the stronger neighbour and must come first.
	store := new(MockUserStore)
	films := new(MockFilmGate)
	store.On("GetByID", mock.Anything, int64(1)).Return(stubUser(1), nil)
	films.On("LikedFilmIDs", mock.Anything, int64(1)).Return([]int64{1, 2}, nil)
	films.On("LikesForFilms", mock.Anything, []int64{1, 2}).Return([]repository.LikeRow{
		{FilmID: 1, UserID: 1},
		{FilmID: 2, UserID: 1},
		{FilmID: 1, UserID: 2},
		{FilmID: 2, UserID: 2},
		{FilmID: 1, UserID: 3},
	}, nil)
	films.On("LikedFilmIDs", mock.Anything, int64(2)).Return([]int64{1, 2, 4}, nil)
	films.On("LikedFilmIDs", mock.Anything, int64(3)).Return([]int64{1, 5}, nil)
	films.On("ListByIDs", mock.Anything, []int64{4, 5}).Return([]domain.Film{
		{ID: 4, Name: "Четвёртый"},
		{ID: 5, Name: "Пятый"},
	}, nil)

	svc := NewService(store, films, new(MockEventRecorder))

	recs, err := svc.Recommendations(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, int64(4), recs[0].ID)
	assert.Equal(t, int64(5), recs[1].ID)
}
