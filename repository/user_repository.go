package repository

import (
	"context"

	"backend/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(ctx context.Context, email string) (int64, error) {
	var cnt int64
	err := r.DB.WithContext(ctx).
		Model(&entity.User{}).
		Where("email = ?", email).
		Count(&cnt).Error
	return cnt, err
}
