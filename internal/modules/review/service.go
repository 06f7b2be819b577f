package review

import (
	"context"
	"errors"
	"log"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

const defaultListCount = 10

type Service struct {
	store  ReviewStore
	users  UserGate
	films  FilmGate
	events EventRecorder
}

func NewService(store ReviewStore, users UserGate, films FilmGate, events EventRecorder) *Service {
	return &Service{store: store, users: users, films: films, events: events}
}

// Create stores a review after checking both referenced entities
// exist, then records a REVIEW/ADD event for the author.
func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.films.GetByID(ctx, req.FilmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFilmNotFound
		}
		return nil, err
	}
	rv := &domain.Review{
		Content:    req.Content,
		IsPositive: *req.IsPositive,
		UserID:     req.UserID,
		FilmID:     req.FilmID,
	}
	if err := s.store.Create(ctx, rv); err != nil {
		return nil, err
	}
	log.Printf("review_created id=%d film=%d user=%d", rv.ID, rv.FilmID, rv.UserID)
	if err := s.events.Record(ctx, rv.UserID, rv.ID, domain.EventReview, domain.OpAdd); err != nil {
		return nil, err
	}
	return rv, nil
}

// Update rewrites content and positivity; the event is tagged with the
// review's author, not the caller.
func (s *Service) Update(ctx context.Context, req UpdateReviewRequest) (*domain.Review, error) {
	rv := &domain.Review{
		ID:         req.ID,
		Content:    req.Content,
		IsPositive: *req.IsPositive,
	}
	if err := s.store.Update(ctx, rv); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if err := s.events.Record(ctx, rv.UserID, rv.ID, domain.EventReview, domain.OpUpdate); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	rv, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("review_deleted id=%d", id)
	return s.events.Record(ctx, rv.UserID, rv.ID, domain.EventReview, domain.OpRemove)
}

// List returns reviews most useful first; filmID 0 means all films,
// non-positive count falls back to 10.
func (s *Service) List(ctx context.Context, filmID int64, count int) ([]domain.Review, error) {
	if count <= 0 {
		count = defaultListCount
	}
	return s.store.List(ctx, filmID, count)
}

func (s *Service) Like(ctx context.Context, reviewID, userID int64) error {
	return s.grade(ctx, reviewID, userID, 1)
}

func (s *Service) Dislike(ctx context.Context, reviewID, userID int64) error {
	return s.grade(ctx, reviewID, userID, -1)
}

// DeleteLike and DeleteDislike remove the pair's grade; removing an
// absent grade is a silent no-op.
func (s *Service) DeleteLike(ctx context.Context, reviewID, userID int64) error {
	return s.removeGrade(ctx, reviewID, userID)
}

func (s *Service) DeleteDislike(ctx context.Context, reviewID, userID int64) error {
	return s.removeGrade(ctx, reviewID, userID)
}

func (s *Service) grade(ctx context.Context, reviewID, userID int64, grade int) error {
	if _, err := s.Get(ctx, reviewID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return s.store.SetGrade(ctx, reviewID, userID, grade)
}

func (s *Service) removeGrade(ctx context.Context, reviewID, userID int64) error {
	if _, err := s.Get(ctx, reviewID); err != nil {
		return err
	}
	return s.store.RemoveGrade(ctx, reviewID, userID)
}
