package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/MyWhiskies/pkg/model"
)

type BottleRepository interface {
	AddBottle(ctx context.Context, bottle model.Bottle, distilleryIDs []uint) (*model.Bottle, error)
	CountBottles(ctx context.Context) (int64, error)
	DeleteBottle(ctx context.Context, bottleID uint) error
	GetBottleByID(ctx context.Context, bottleID uint) (*model.Bottle, error)
	GetBottlesForBottler(ctx context.Context, bottlerID uint) ([]*model.Bottle, error)
	GetBottlesForDistillery(ctx context.Context, distilleryID uint) ([]*model.Bottle, error)
	GetBottlesForUser(ctx context.Context, userID uint) ([]*model.Bottle, error)
	UpdateBottle(ctx context.Context, bottle *model.Bottle, distilleryIDs []uint) error
}

func (r *Repository) AddBottle(ctx context.Context, bottle model.Bottle, distilleryIDs []uint) (*model.Bottle, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&bottle).Error; err != nil {
			return err
		}

		return linkDistilleries(tx, bottle.ID, distilleryIDs)
	})
	if err != nil {
		r.Logger.Error("error adding bottle", zap.String("name", bottle.Name), zap.Uint("user_id", bottle.UserID), zap.Error(err))

		return nil, err
	}

	return &bottle, nil
}

func (r *Repository) UpdateBottle(ctx context.Context, bottle *model.Bottle, distilleryIDs []uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(bottle).Error; err != nil {
			return err
		}

		if err := tx.Where("bottle_id = ?", bottle.ID).Delete(&model.BottleDistillery{}).Error; err != nil {
			return err
		}

		return linkDistilleries(tx, bottle.ID, distilleryIDs)
	})
}

func linkDistilleries(tx *gorm.DB, bottleID uint, distilleryIDs []uint) error {
	if len(distilleryIDs) == 0 {
		return nil
	}

	links := make([]model.BottleDistillery, 0, len(distilleryIDs))
	for _, distilleryID := range distilleryIDs {
		links = append(links, model.BottleDistillery{BottleID: bottleID, DistilleryID: distilleryID})
	}

	return tx.Create(&links).Error
}

func (r *Repository) withAssociations(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Preload("Distilleries", func(db *gorm.DB) *gorm.DB { return db.Order("distilleries.name") }).
		Preload("Bottler").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("bottle_images.sequence") })
}

func (r *Repository) GetBottleByID(ctx context.Context, bottleID uint) (*model.Bottle, error) {
	var bottle model.Bottle

	result := r.withAssociations(ctx).First(&bottle, bottleID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &bottle, nil
}

func (r *Repository) GetBottlesForUser(ctx context.Context, userID uint) ([]*model.Bottle, error) {
	var bottles []*model.Bottle

	result := r.withAssociations(ctx).Where("bottles.user_id = ?", userID).Order("bottles.id").Find(&bottles)
	if result.Error != nil {
		r.Logger.Error("error getting bottles for user", zap.Uint("user_id", userID), zap.Error(result.Error))

		return nil, result.Error
	}

	return bottles, nil
}

func (r *Repository) GetBottlesForDistillery(ctx context.Context, distilleryID uint) ([]*model.Bottle, error) {
	var bottles []*model.Bottle

	result := r.withAssociations(ctx).
		Joins("INNER JOIN bottle_distilleries bd ON bd.bottle_id = bottles.id").
		Where("bd.distillery_id = ?", distilleryID).
		Order("bottles.id").
		Find(&bottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

func (r *Repository) GetBottlesForBottler(ctx context.Context, bottlerID uint) ([]*model.Bottle, error) {
	var bottles []*model.Bottle

	result := r.withAssociations(ctx).Where("bottles.bottler_id = ?", bottlerID).Order("bottles.id").Find(&bottles)
	if result.Error != nil {
		return nil, result.Error
	}

	return bottles, nil
}

// DeleteBottle removes the bottle with its distillery links and image rows.
func (r *Repository) DeleteBottle(ctx context.Context, bottleID uint) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bottle_id = ?", bottleID).Delete(&model.BottleDistillery{}).Error; err != nil {
			return err
		}

		if err := tx.Where("bottle_id = ?", bottleID).Delete(&model.BottleImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Bottle{}, bottleID).Error
	})
}

// CountBottles counts bottles owned by users that have not been deleted.
func (r *Repository) CountBottles(ctx context.Context) (int64, error) {
	var count int64

	result := r.DB.WithContext(ctx).Model(&model.Bottle{}).
		Joins("INNER JOIN users u ON u.id = bottles.user_id").
		Where("u.is_deleted = ?", false).
		Count(&count)

	return count, result.Error
}
