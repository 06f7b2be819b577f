package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func toDomainReview(m reviewModel) *domain.Review {
	return &domain.Review{
		ID:         m.ID,
		Content:    m.Content,
		IsPositive: m.IsPositive,
		UserID:     m.UserID,
		FilmID:     m.FilmID,
		Useful:     m.Useful,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := reviewModel{
		Content:    rv.Content,
		IsPositive: rv.IsPositive,
		Useful:     0,
		UserID:     rv.UserID,
		FilmID:     rv.FilmID,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*rv = *toDomainReview(m)
	return nil
}

// Update rewrites content and positivity only; author, film and the
// derived useful score are immutable through this path.
func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]any{
			"content":     rv.Content,
			"is_positive": rv.IsPositive,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	updated, err := r.GetByID(ctx, rv.ID)
	if err != nil {
		return err
	}
	*rv = *updated
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var m reviewModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&reviewGradeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&reviewModel{}, id).Error
	})
}

// List returns reviews ordered by useful descending, optionally scoped
// to one film. filmID 0 means all films.
func (r *ReviewRepository) List(ctx context.Context, filmID int64, count int) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Order("useful DESC, id").Limit(count)
	if filmID != 0 {
		q = q.Where("film_id = ?", filmID)
	}
	var rows []reviewModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

// SetGrade inserts a signed grade for the (review, user) pair unless
// one already exists, then recomputes the useful score. Insert-if-
// absent keeps repeated likes from double counting.
func (r *ReviewRepository) SetGrade(ctx context.Context, reviewID, userID int64, grade int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&reviewGradeModel{ReviewID: reviewID, UserID: userID, Grade: grade}).Error
		if err != nil && !isUniqueViolation(err) {
			return err
		}
		return recomputeUseful(tx, reviewID)
	})
}

// RemoveGrade deletes the pair's grade row if present; removing an
// absent grade is a no-op.
func (r *ReviewRepository) RemoveGrade(ctx context.Context, reviewID, userID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).
			Delete(&reviewGradeModel{}).Error; err != nil {
			return err
		}
		return recomputeUseful(tx, reviewID)
	})
}

func recomputeUseful(tx *gorm.DB, reviewID int64) error {
	var useful int
	err := tx.Model(&reviewGradeModel{}).
		Where("review_id = ?", reviewID).
		Select("COALESCE(SUM(grade), 0)").
		Scan(&useful).Error
	if err != nil {
		return err
	}
	return tx.Model(&reviewModel{}).
		Where("id = ?", reviewID).
		Update("useful", useful).Error
}
