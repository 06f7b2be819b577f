package film

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
type MockFilmStore struct {
	mock.Mock
}

func (m *MockFilmStore) Create(ctx context.Context, f *domain.Film) error {
	args := m.Called(ctx, f)
	if f != nil {
		f.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockFilmStore) Update(ctx context.Context, f *domain.Film) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFilmStore) GetByID(ctx context.Context, id int64) (*domain.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Film), args.Error(1)
}

func (m *MockFilmStore) GetAll(ctx context.Context) ([]domain.Film, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Film), args.Error(1)
}

func (m *MockFilmStore) ListByIDs(ctx context.Context, ids []int64) ([]domain.Film, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
}

func (m *MockFilmStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFilmStore) AddLike(ctx context.Context, filmID, userID int64) error {
	args := m.Called(ctx, filmID, userID)
	return args.Error(0)
}

func (m *MockFilmStore) RemoveLike(ctx context.Context, filmID, userID int64) error {
	args := m.Called(ctx, filmID, userID)
	return args.Error(0)
}

func (m *MockFilmStore) LikedFilmIDs(ctx context.Context, userID int64) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockFilmStore) Popular(ctx context.Context, filter repository.PopularFilter) ([]domain.Film, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Film), args.Error(1)
}

func (m *MockFilmStore) Search(ctx context.Context, query, by string) ([]domain.Film, error) {
	args := m.Called(ctx, query, by)
	return args.Get(0).([]domain.Film), args.Error(1)
}

func (m *MockFilmStore) ByDirector(ctx context.Context, directorID int64, sortBy string) ([]domain.Film, error) {
	args := m.Called(ctx, directorID, sortBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
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

type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) Record(ctx context.Context, userID, entityID int64, t domain.EventType, op domain.Operation) error {
	args := m.Called(ctx, userID, entityID, t, op)
	return args.Error(0)
}

func validRequest() FilmRequest {
	return FilmRequest{
		Name:        "Солярис",
		Description: "Станция над разумным океаном",
		ReleaseDate: domain.NewDate(1972, 3, 20),
		Duration:    167,
		Mpa:         idRef{ID: 2},
		Genres:      []idRef{{ID: 2}},
	}
}

func TestService_Create_Success(t *testing.T) {
	store := new(MockFilmStore)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

	f, err := svc.Create(context.Background(), validRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(999), f.ID)
	assert.Equal(t, int64(2), f.Mpa.ID)
	store.AssertExpectations(t)
}

func TestService_Create_UnknownGenre(t *testing.T) {
	store := new(MockFilmStore)
	store.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

	_, err := svc.Create(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrAttributeUnknown)
}

func TestService_Update_UnknownFilm(t *testing.T) {
	store := new(MockFilmStore)
	store.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)
	store.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

	req := validRequest()
	req.ID = 42
	_, err := svc.Update(context.Background(), req)

	assert.ErrorIs(t, err, ErrFilmNotFound)
}

func TestService_Update_UnknownAttribute(t *testing.T) {
	store := new(MockFilmStore)
	store.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)
	store.On("GetByID", mock.Anything, int64(42)).Return(&domain.Film{ID: 42}, nil)

	svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

	req := validRequest()
	req.ID = 42
	_, err := svc.Update(context.Background(), req)

	assert.ErrorIs(t, err, ErrAttributeUnknown)
}

func TestService_Like_RecordsEvent(t *testing.T) {
	store := new(MockFilmStore)
	users := new(MockUserGate)
	events := new(MockEventRecorder)
	store.On("GetByID", mock.Anything, int64(5)).Return(&domain.Film{ID: 5}, nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(&domain.User{ID: 9}, nil)
	store.On("AddLike", mock.Anything, int64(5), int64(9)).Return(nil)
	events.On("Record", mock.Anything, int64(9), int64(5), domain.EventLike, domain.OpAdd).Return(nil)

	svc := NewService(store, users, events)

	err := svc.Like(context.Background(), 5, 9)

	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestService_Like_UnknownUser(t *testing.T) {
	store := new(MockFilmStore)
	users := new(MockUserGate)
	store.On("GetByID", mock.Anything, int64(5)).Return(&domain.Film{ID: 5}, nil)
	users.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(store, users, new(MockEventRecorder))

	err := svc.Like(context.Background(), 5, 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
	store.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Popular_DefaultCount(t *testing.T) {
	store := new(MockFilmStore)
	store.On("Popular", mock.Anything, repository.PopularFilter{Count: 10}).
		Return([]domain.Film{{ID: 1}}, nil)

	svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

	films, err := svc.Popular(context.Background(), repository.PopularFilter{})

	assert.NoError(t, err)
	assert.Len(t, films, 1)
	store.AssertExpectations(t)
}

func TestService_Search_ByModes(t *testing.T) {
	cases := []struct {
		by   string
		mode string
	}{
		{"title", "title"},
		{"director", "director"},
		{"title,director", "both"},
		{"director,title", "both"},
	}
	for _, tc := range cases {
		store := new(MockFilmStore)
		store.On("Search", mock.Anything, "термин", tc.mode).Return([]domain.Film{}, nil)

		svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

		_, err := svc.Search(context.Background(), "термин", tc.by)

		assert.NoError(t, err, tc.by)
		store.AssertExpectations(t)
	}
}

func TestService_Search_InvalidBy(t *testing.T) {
	svc := NewService(new(MockFilmStore), new(MockUserGate), new(MockEventRecorder))

	_, err := svc.Search(context.Background(), "термин", "genre")

	assert.ErrorIs(t, err, ErrInvalidSearchBy)
}

func TestService_CommonWithFriend_SortedByLikes(t *testing.T) {
	store := new(MockFilmStore)
	store.On("LikedFilmIDs", mock.Anything, int64(1)).Return([]int64{1, 2, 3}, nil)
	store.On("LikedFilmIDs", mock.Anything, int64(2)).Return([]int64{2, 3, 4}, nil)
	store.On("ListByIDs", mock.Anything, []int64{2, 3}).Return([]domain.Film{
		{ID: 2, Likes: []int64{1, 2}},
		{ID: 3, Likes: []int64{1, 2, 3}},
	}, nil)

	svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

	films, err := svc.CommonWithFriend(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Len(t, films, 2)
	assert.Equal(t, int64(3), films[0].ID)
	assert.Equal(t, int64(2), films[1].ID)
}

func TestService_ByDirector_InvalidSort(t *testing.T) {
	svc := NewService(new(MockFilmStore), new(MockUserGate), new(MockEventRecorder))

	_, err := svc.ByDirector(context.Background(), 1, "rating")

	assert.ErrorIs(t, err, ErrInvalidSortBy)
}

func TestService_ByDirector_EmptyMeansUnknown(t *testing.T) {
	store := new(MockFilmStore)
	store.On("ByDirector", mock.Anything, int64(7), "year").Return([]domain.Film{}, nil)

	svc := NewService(store, new(MockUserGate), new(MockEventRecorder))

	_, err := svc.ByDirector(context.Background(), 7, "year")

	assert.ErrorIs(t, err, ErrDirectorNotFound)
}
