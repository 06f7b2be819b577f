package repository

import (
	"context"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type DirectorRepository struct {
	db *gorm.DB
}

func NewDirectorRepository(db *gorm.DB) *DirectorRepository {
	return &DirectorRepository{db: db}
}

func (r *DirectorRepository) Create(ctx context.Context, d *domain.Director) error {
	m := directorModel{Name: d.Name}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	d.ID = m.ID
	return nil
}

func (r *DirectorRepository) Update(ctx context.Context, d *domain.Director) error {
	tx := r.db.WithContext(ctx).
		Model(&directorModel{}).
		Where("id = ?", d.ID).
		Update("name", d.Name)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DirectorRepository) GetByID(ctx context.Context, id int64) (*domain.Director, error) {
	var m directorModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return &domain.Director{ID: m.ID, Name: m.Name}, nil
}

func (r *DirectorRepository) GetAll(ctx context.Context) ([]domain.Director, error) {
	var rows []directorModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Director, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Director{ID: m.ID, Name: m.Name})
	}
	return out, nil
}

// Delete removes the director and its film credits.
func (r *DirectorRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("director_id = ?", id).Delete(&filmDirectorModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&directorModel{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
