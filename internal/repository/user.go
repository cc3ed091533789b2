package repository

import (
	"context"

	"storefront-checkout/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(ctx context.Context, userID string) (*model.UserProfile, error)
	VerifiedUserIDs(ctx context.Context) ([]string, error)
}

type userRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepoImpl{db: db}
}

func (r *userRepoImpl) FindByID(ctx context.Context, userID string) (*model.UserProfile, error) {
	var user model.UserProfile
	err := r.db.WithContext(ctx).
		Where("id = ?", userID).
		First(&user).Error

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepoImpl) VerifiedUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.UserProfile{}).
		Where("email_verified = ?", true).
		Pluck("id", &ids).Error

	if err != nil {
		return nil, err
	}

	return ids, nil
}
