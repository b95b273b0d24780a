package repository

import (
	"context"

	"gorm.io/gorm"

	"droscher.com/MyWhiskies/pkg/model"
)

type ImageRepository interface {
	AddBottleImage(ctx context.Context, bottleID uint, sequence int) (*model.BottleImage, error)
	GetBottleIDs(ctx context.Context) ([]uint, error)
	GetBottleImages(ctx context.Context, bottleID uint) ([]model.BottleImage, error)
	RemoveBottleImages(ctx context.Context, bottleID uint, removed []int, moves []model.SequenceMove, apply func(model.SequenceMove) error) error
}

func (r *Repository) GetBottleImages(ctx context.Context, bottleID uint) ([]model.BottleImage, error) {
	var images []model.BottleImage

	result := r.DB.WithContext(ctx).Where("bottle_id = ?", bottleID).Order("sequence").Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}

	return images, nil
}

func (r *Repository) AddBottleImage(ctx context.Context, bottleID uint, sequence int) (*model.BottleImage, error) {
	image := model.BottleImage{BottleID: bottleID, Sequence: sequence}

	if result := r.DB.WithContext(ctx).Create(&image); result.Error != nil {
		return nil, result.Error
	}

	return &image, nil
}

// RemoveBottleImages deletes the removed rows and applies the moves in
// order inside one transaction. apply runs after each row update; an error
// from it rolls back the deletes and every move.
func (r *Repository) RemoveBottleImages(ctx context.Context, bottleID uint, removed []int, moves []model.SequenceMove, apply func(model.SequenceMove) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(removed) > 0 {
			result := tx.Where("bottle_id = ? AND sequence IN ?", bottleID, removed).Delete(&model.BottleImage{})
			if result.Error != nil {
				return result.Error
			}
		}

		for _, move := range moves {
			result := tx.Model(&model.BottleImage{}).
				Where("bottle_id = ? AND sequence = ?", bottleID, move.From).
				Update("sequence", move.To)
			if result.Error != nil {
				return result.Error
			}

			if err := apply(move); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *Repository) GetBottleIDs(ctx context.Context) ([]uint, error) {
	var ids []uint

	result := r.DB.WithContext(ctx).Model(&model.Bottle{}).Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}

	return ids, nil
}
