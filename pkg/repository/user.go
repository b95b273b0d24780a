package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"droscher.com/MyWhiskies/pkg/model"
)

type UserRepository interface {
	AddUser(ctx context.Context, user model.User) (*model.User, error)
	CountActiveUsers(ctx context.Context) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
}

func (r *Repository) GetUserByID(ctx context.Context, userID uint) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).First(&user, userID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserByName(ctx context.Context, username string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).First(&user)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	result := r.DB.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &user, nil
}

func (r *Repository) AddUser(ctx context.Context, user model.User) (*model.User, error) {
	user.UUID = uuid.New()
	if user.RegisteredAt.IsZero() {
		user.RegisteredAt = time.Now().UTC()
	}

	if result := r.DB.WithContext(ctx).Create(&user); result.Error != nil {
		return nil, result.Error
	}

	return &user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Save(user).Error
}

func (r *Repository) CountActiveUsers(ctx context.Context) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.User{}).Where("is_deleted = ?", false).Count(&count)

	return count, result.Error
}
