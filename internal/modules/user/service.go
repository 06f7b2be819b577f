package user

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

// neighbourLimit caps how many like-overlap neighbours feed the
// recommendation weights.
const neighbourLimit = 5

type Service struct {
	store  UserStore
	films  FilmGate
	events EventRecorder
}

func NewService(store UserStore, films FilmGate, events EventRecorder) *Service {
	return &Service{store: store, films: films, events: events}
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	u := &domain.User{
		Email:    req.Email,
		Login:    req.Login,
		Name:     defaultName(req.Name, req.Login),
		Birthday: req.Birthday,
	}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("user_created id=%d login=%s", u.ID, u.Login)
	return u, nil
}

func (s *Service) Update(ctx context.Context, req UpdateUserRequest) (*domain.User, error) {
	u := &domain.User{
		ID:       req.ID,
		Email:    req.Email,
		Login:    req.Login,
		Name:     defaultName(req.Name, req.Login),
		Birthday: req.Birthday,
	}
	if err := s.store.Update(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Get(ctx, u.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.store.GetAll(ctx)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("user_deleted id=%d", id)
	return nil
}

// AddFriend records a friend request; when the reverse request already
// exists both relations become mutual. Emits a FRIEND/ADD event for
// the acting user.
func (s *Service) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return ErrSelfFriend
	}
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Get(ctx, friendID); err != nil {
		return err
	}
	if err := s.store.AddFriend(ctx, userID, friendID); err != nil {
		return err
	}
	log.Printf("friend_added user=%d friend=%d", userID, friendID)
	return s.events.Record(ctx, userID, friendID, domain.EventFriend, domain.OpAdd)
}

// RemoveFriend drops the outbound relation, downgrading any reverse
// relation to non-mutual. Emits a FRIEND/REMOVE event.
func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if _, err := s.Get(ctx, userID); err != nil {
		return err
	}
	if _, err := s.Get(ctx, friendID); err != nil {
		return err
	}
	if err := s.store.RemoveFriend(ctx, userID, friendID); err != nil {
		return err
	}
	log.Printf("friend_removed user=%d friend=%d", userID, friendID)
	return s.events.Record(ctx, userID, friendID, domain.EventFriend, domain.OpRemove)
}

// Friends lists everyone the user has an outbound relation to,
// pending or confirmed.
func (s *Service) Friends(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}
	friends, err := s.store.Friends(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(friends))
	for id := range friends {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return s.store.GetByIDs(ctx, ids)
}

// CommonFriends intersects both users' friend lists.
func (s *Service) CommonFriends(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	mine, err := s.Friends(ctx, userID)
	if err != nil {
		return nil, err
	}
	theirs, err := s.Friends(ctx, otherID)
	if err != nil {
		return nil, err
	}
	theirIDs := make(map[int64]struct{}, len(theirs))
	for _, u := range theirs {
		theirIDs[u.ID] = struct{}{}
	}
	common := make([]domain.User, 0)
	for _, u := range mine {
		if _, ok := theirIDs[u.ID]; ok {
			common = append(common, u)
		}
	}
	return common, nil
}

// Recommendations ranks films the user has not seen by summing the
// like-overlap of the closest neighbours who liked them. A user with
// no likes gets an empty list.
func (s *Service) Recommendations(ctx context.Context, userID int64) ([]domain.Film, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	mine, err := s.films.LikedFilmIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(mine) == 0 {
		return []domain.Film{}, nil
	}
	mineSet := make(map[int64]struct{}, len(mine))
	for _, id := range mine {
		mineSet[id] = struct{}{}
	}

	rows, err := s.films.LikesForFilms(ctx, mine)
	if err != nil {
		return nil, err
	}
	overlap := map[int64]int{}
	for _, row := range rows {
		if row.UserID != userID {
			overlap[row.UserID]++
		}
	}
	if len(overlap) == 0 {
		return []domain.Film{}, nil
	}

	neighbours := make([]int64, 0, len(overlap))
	for id := range overlap {
		neighbours = append(neighbours, id)
	}
	sort.Slice(neighbours, func(i, j int) bool {
		if overlap[neighbours[i]] != overlap[neighbours[j]] {
			return overlap[neighbours[i]] > overlap[neighbours[j]]
		}
		return neighbours[i] < neighbours[j]
	})
	if len(neighbours) > neighbourLimit {
		neighbours = neighbours[:neighbourLimit]
	}

	weight := map[int64]int{}
	candidates := make([]int64, 0)
	for _, n := range neighbours {
		liked, err := s.films.LikedFilmIDs(ctx, n)
		if err != nil {
			return nil, err
		}
		for _, filmID := range liked {
			if _, seen := mineSet[filmID]; seen {
				continue
			}
			if _, known := weight[filmID]; !known {
				candidates = append(candidates, filmID)
			}
			weight[filmID] += overlap[n]
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return weight[candidates[i]] > weight[candidates[j]]
	})
	return s.films.ListByIDs(ctx, candidates)
}

func defaultName(name, login string) string {
	if strings.TrimSpace(name) == "" {
		return login
	}
	return name
}
