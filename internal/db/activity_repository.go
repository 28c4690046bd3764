package db

import (
	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) List() ([]models.Activity, error) {
	activities := make([]models.Activity, 0)
	if err := repo.database.Order("id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (repo *ActivityRepository) ListSlugs() ([]string, error) {
	slugs := make([]string, 0)
	if err := repo.database.Model(&models.Activity{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

func (repo *ActivityRepository) ExistsBySlug(slugValue string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Activity{}).
		Where("slug = ?", slugValue).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ActivityRepository) FindByID(activityID uint) (models.Activity, bool, error) {
	activity := models.Activity{}
	result := repo.database.Limit(1).Find(&activity, activityID)
	if result.Error != nil {
		return models.Activity{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Activity{}, false, nil
	}
	return activity, true, nil
}

func (repo *ActivityRepository) Create(activity *models.Activity) error {
	return repo.database.Create(activity).Error
}
