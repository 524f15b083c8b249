package auth

import (
	"context"
	"errors"

	authdomain "law-office-go/internal/domain/auth"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*authdomain.User, error) {
	var user authdomain.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, authdomain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) Create(ctx context.Context, user *authdomain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *PostgresRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&authdomain.User{}).
		Where("username = ?", username).
		Count(&count).Error
	return count, err
}
