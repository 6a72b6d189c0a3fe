package repository

import (
	"context"
	"errors"
	"strings"

	"filmorate/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and fills in the generated id. Duplicate email or
// login comes back as ErrEmailTaken / ErrLoginTaken.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	u.Email = strings.TrimSpace(u.Email)
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return translateUserConflict(err)
	}
	return nil
}

// Update writes the full user record. The same conflict translation as Create
// applies when email or login collides with another user.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{ID: u.ID}).
		Select("email", "login", "name", "birthday").
		Updates(map[string]interface{}{
			"email":    strings.TrimSpace(u.Email),
			"login":    u.Login,
			"name":     u.Name,
			"birthday": u.Birthday,
		})
	if tx.Error != nil {
		return translateUserConflict(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID returns (nil, nil) when the user does not exist.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	var users []domain.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&users).Error
	return users, err
}

// DeleteByID exists at the persistence layer only; no handler exposes it.
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.User{}, id).Error
}

// DeleteAll wipes users together with the rows that reference them. Intended
// for test isolation.
func (r *UserRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM friendships",
			"DELETE FROM film_likes",
			"DELETE FROM users",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return tx.Exec("UPDATE films SET likes_count = 0").Error
	})
}
