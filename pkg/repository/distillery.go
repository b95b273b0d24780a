package repository

import (
	"context"

	"droscher.com/MyWhiskies/pkg/model"
)

type DistilleryRepository interface {
	AddDistilleries(ctx context.Context, distilleries []model.Distillery) error
	AddDistillery(ctx context.Context, distillery model.Distillery) (*model.Distillery, error)
	CountDistilleryBottles(ctx context.Context, distilleryID uint) (int64, error)
	DeleteDistillery(ctx context.Context, distilleryID uint) error
	GetDistilleriesByIDs(ctx context.Context, userID uint, distilleryIDs []uint) ([]*model.Distillery, error)
	GetDistilleriesForUser(ctx context.Context, userID uint) ([]*model.Distillery, error)
	GetDistilleryByID(ctx context.Context, distilleryID uint) (*model.Distillery, error)
	UpdateDistillery(ctx context.Context, distillery *model.Distillery) error
}

const seedBatchSize = 100

func (r *Repository) AddDistillery(ctx context.Context, distillery model.Distillery) (*model.Distillery, error) {
	if result := r.DB.WithContext(ctx).Create(&distillery); result.Error != nil {
		return nil, result.Error
	}

	return &distillery, nil
}

func (r *Repository) AddDistilleries(ctx context.Context, distilleries []model.Distillery) error {
	if len(distilleries) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).CreateInBatches(&distilleries, seedBatchSize).Error
}

func (r *Repository) UpdateDistillery(ctx context.Context, distillery *model.Distillery) error {
	return r.DB.WithContext(ctx).Save(distillery).Error
}

func (r *Repository) GetDistilleryByID(ctx context.Context, distilleryID uint) (*model.Distillery, error) {
	var distillery model.Distillery

	result := r.DB.WithContext(ctx).First(&distillery, distilleryID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &distillery, nil
}

func (r *Repository) GetDistilleriesForUser(ctx context.Context, userID uint) ([]*model.Distillery, error) {
	var distilleries []*model.Distillery

	result := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("name").Find(&distilleries)
	if result.Error != nil {
		return nil, result.Error
	}

	return distilleries, nil
}

func (r *Repository) GetDistilleriesByIDs(ctx context.Context, userID uint, distilleryIDs []uint) ([]*model.Distillery, error) {
	var distilleries []*model.Distillery

	if len(distilleryIDs) == 0 {
		return distilleries, nil
	}

	result := r.DB.WithContext(ctx).Where("user_id = ? AND id IN ?", userID, distilleryIDs).Order("name").Find(&distilleries)
	if result.Error != nil {
		return nil, result.Error
	}

	return distilleries, nil
}

func (r *Repository) CountDistilleryBottles(ctx context.Context, distilleryID uint) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.BottleDistillery{}).Where("distillery_id = ?", distilleryID).Count(&count)

	return count, result.Error
}

func (r *Repository) DeleteDistillery(ctx context.Context, distilleryID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Distillery{}, distilleryID)

	return result.Error
}
