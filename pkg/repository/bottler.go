package repository

import (
	"context"

	"droscher.com/MyWhiskies/pkg/model"
)

type BottlerRepository interface {
	AddBottler(ctx context.Context, bottler model.Bottler) (*model.Bottler, error)
	CountBottlerBottles(ctx context.Context, bottlerID uint) (int64, error)
	DeleteBottler(ctx context.Context, bottlerID uint) error
	GetBottlerByID(ctx context.Context, bottlerID uint) (*model.Bottler, error)
	GetBottlersForUser(ctx context.Context, userID uint) ([]*model.Bottler, error)
	UpdateBottler(ctx context.Context, bottler *model.Bottler) error
}

func (r *Repository) AddBottler(ctx context.Context, bottler model.Bottler) (*model.Bottler, error) {
	if result := r.DB.WithContext(ctx).Create(&bottler); result.Error != nil {
		return nil, result.Error
	}

	return &bottler, nil
}

func (r *Repository) UpdateBottler(ctx context.Context, bottler *model.Bottler) error {
	return r.DB.WithContext(ctx).Save(bottler).Error
}

func (r *Repository) GetBottlerByID(ctx context.Context, bottlerID uint) (*model.Bottler, error) {
	var bottler model.Bottler

	result := r.DB.WithContext(ctx).First(&bottler, bottlerID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &bottler, nil
}

func (r *Repository) GetBottlersForUser(ctx context.Context, userID uint) ([]*model.Bottler, error) {
	var bottlers []*model.Bottler

	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("name").Find(&bottlers)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottlers, nil
}

func (r *Repository) CountBottlerBottles(ctx context.Context, bottlerID uint) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Bottle{}).Where("bottler_id = ?", bottlerID).Count(&count)

	return count, result.Error
}

func (r *Repository) DeleteBottler(ctx context.Context, bottlerID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Bottler{}, bottlerID)

	return result.Error
}
