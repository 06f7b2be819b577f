package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) *GenreRepository {
	return &GenreRepository{db: db}
}

func (r *GenreRepository) GetAll(ctx context.Context) ([]domain.Genre, error) {
	var rows []genreModel
	if err := r.db.WithContext(ctx).Order("genre_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Genre, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Genre{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *GenreRepository) GetByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var m genreModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &domain.Genre{ID: m.ID, Name: m.Name}, nil
}
