package repository

import (
	"context"
	"errors"
	"strings"

	"filmorate/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:       m.ID,
		Email:    m.Email,
		Login:    m.Login,
		Name:     m.Name,
		Birthday: domain.Date{Time: m.Birthday},
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:       u.ID,
		Email:    strings.TrimSpace(strings.ToLower(u.Email)),
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday.Time,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	u.Friends = map[int64]bool{}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"email":    m.Email,
			"login":    m.Login,
			"name":     m.Name,
			"birthday": m.Birthday,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	u := toDomainUser(m)
	friends, err := r.Friends(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Friends = friends
	return u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

// GetByIDs loads users in ascending id order; missing ids are skipped.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

// Delete removes the user together with its friendship rows, film
// likes and review grades.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user1_id = ? OR user2_id = ?", id, id).
			Delete(&friendshipModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&filmLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&reviewGradeModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&userModel{}, id).Error
	})
}

// Friends returns the ids of everyone the user has an outbound
// relation to, mapped to the mutual flag.
func (r *UserRepository) Friends(ctx context.Context, userID int64) (map[int64]bool, error) {
	var rows []friendshipModel
	if err := r.db.WithContext(ctx).
		Where("user1_id = ?", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	friends := make(map[int64]bool, len(rows))
	for _, row := range rows {
		friends[row.FriendID] = row.Mutual
	}
	return friends, nil
}

// AddFriend records a friend request from userID to friendID. When the
// reverse relation already exists both directions are rewritten as
// mutual; otherwise a one-way pending row is written. The whole
// transition runs in one transaction so two concurrent requests cannot
// leave the pair half-confirmed.
func (r *UserRepository) AddFriend(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reverse friendshipModel
		err := tx.Where("user1_id = ? AND user2_id = ?", friendID, userID).
			First(&reverse).Error
		switch {
		case err == nil:
			if err := upsertFriendship(tx, userID, friendID, true); err != nil {
				return err
			}
			return upsertFriendship(tx, friendID, userID, true)
		case errors.Is(err, gorm.ErrRecordNotFound):
			return upsertFriendship(tx, userID, friendID, false)
		default:
			return err
		}
	})
}

// RemoveFriend deletes the outbound row. A reverse row is kept but
// downgraded to non-mutual: unfriending does not cancel the other
// side's request.
func (r *UserRepository) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user1_id = ? AND user2_id = ?", userID, friendID).
			Delete(&friendshipModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&friendshipModel{}).
			Where("user1_id = ? AND user2_id = ?", friendID, userID).
			Update("mutually", false).Error
	})
}

func upsertFriendship(tx *gorm.DB, userID, friendID int64, mutual bool) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user1_id"}, {Name: "user2_id"}},
		DoUpdates: clause.Assignments(map[string]any{"mutually": mutual}),
	}).Create(&friendshipModel{
		UserID:   userID,
		FriendID: friendID,
		Mutual:   mutual,
	}).Error
}
