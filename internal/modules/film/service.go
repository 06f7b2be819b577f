package film

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"filmorate/internal/domain"
	"filmorate/internal/repository"

	"gorm.io/gorm"
)

const defaultPopularCount = 10

type Service struct {
	store  FilmStore
	users  UserGate
	events EventRecorder
}

func NewService(store FilmStore, users UserGate, events EventRecorder) *Service {
	return &Service{store: store, users: users, events: events}
}

func (s *Service) Create(ctx context.Context, req FilmRequest) (*domain.Film, error) {
	f := req.toFilm()
	if err := s.store.Create(ctx, f); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttributeUnknown
		}
		return nil, err
	}
	log.Printf("film_created id=%d name=%q", f.ID, f.Name)
	return f, nil
}

func (s *Service) Update(ctx context.Context, req FilmRequest) (*domain.Film, error) {
	f := req.toFilm()
	if err := s.store.Update(ctx, f); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if _, getErr := s.store.GetByID(ctx, f.ID); errors.Is(getErr, gorm.ErrRecordNotFound) {
				return nil, ErrFilmNotFound
			}
			return nil, ErrAttributeUnknown
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Film, error) {
	f, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	return f, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Film, error) {
	return s.store.GetAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("film_deleted id=%d", id)
	return nil
}

// Like records a like and a LIKE/ADD feed event. Repeated likes from
// the same user collapse to one row.
func (s *Service) Like(ctx context.Context, filmID, userID int64) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.store.AddLike(ctx, filmID, userID); err != nil {
		return err
	}
	log.Printf("film_liked film=%d user=%d", filmID, userID)
	return s.events.Record(ctx, userID, filmID, domain.EventLike, domain.OpAdd)
}

func (s *Service) Unlike(ctx context.Context, filmID, userID int64) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}
	if err := s.store.RemoveLike(ctx, filmID, userID); err != nil {
		return err
	}
	log.Printf("film_unliked film=%d user=%d", filmID, userID)
	return s.events.Record(ctx, userID, filmID, domain.EventLike, domain.OpRemove)
}

// Popular ranks films by like count with optional genre/year filters.
// A non-positive count falls back to the default of 10.
func (s *Service) Popular(ctx context.Context, filter repository.PopularFilter) ([]domain.Film, error) {
	if filter.Count <= 0 {
		filter.Count = defaultPopularCount
	}
	return s.store.Popular(ctx, filter)
}

// Search matches the query against titles and/or director names. The
// by parameter is the comma-combinable title/director pair from the
// API; anything else is rejected.
func (s *Service) Search(ctx context.Context, query, by string) ([]domain.Film, error) {
	mode, err := searchMode(by)
	if err != nil {
		return nil, err
	}
	return s.store.Search(ctx, query, mode)
}

// CommonWithFriend returns films both users liked, most liked first.
func (s *Service) CommonWithFriend(ctx context.Context, userID, friendID int64) ([]domain.Film, error) {
	mine, err := s.store.LikedFilmIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.store.LikedFilmIDs(ctx, friendID)
	if err != nil {
		return nil, err
	}
	theirSet := make(map[int64]struct{}, len(theirs))
	for _, id := range theirs {
		theirSet[id] = struct{}{}
	}
	common := make([]int64, 0)
	for _, id := range mine {
		if _, ok := theirSet[id]; ok {
			common = append(common, id)
		}
	}
	films, err := s.store.ListByIDs(ctx, common)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(films, func(i, j int) bool {
		return films[i].LikeCount() > films[j].LikeCount()
	})
	return films, nil
}

// ByDirector lists a director's films sorted by likes or year. A
// director with no credited films is reported as not found.
func (s *Service) ByDirector(ctx context.Context, directorID int64, sortBy string) ([]domain.Film, error) {
	if sortBy != "likes" && sortBy != "year" {
		return nil, ErrInvalidSortBy
	}
	films, err := s.store.ByDirector(ctx, directorID, sortBy)
	if err != nil {
		return nil, err
	}
	if len(films) == 0 {
		return nil, ErrDirectorNotFound
	}
	return films, nil
}

func (s *Service) checkFilmAndUser(ctx context.Context, filmID, userID int64) error {
	if _, err := s.Get(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func searchMode(by string) (string, error) {
	hasTitle := strings.Contains(by, "title")
	hasDirector := strings.Contains(by, "director")
	switch {
	case hasTitle && hasDirector:
		return "both", nil
	case hasTitle:
		return "title", nil
	case hasDirector:
		return "director", nil
	default:
		return "", ErrInvalidSearchBy
	}
}
