package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type MpaRepository struct {
	db *gorm.DB
}

func NewMpaRepository(db *gorm.DB) *MpaRepository {
	return &MpaRepository{db: db}
}

func (r *MpaRepository) GetAll(ctx context.Context) ([]domain.Mpa, error) {
	var rows []mpaModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Mpa, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Mpa{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

func (r *MpaRepository) GetByID(ctx context.Context, id int64) (*domain.Mpa, error) {
	var m mpaModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &domain.Mpa{ID: m.ID, Name: m.Name}, nil
}
