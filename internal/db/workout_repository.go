package db

import (
	"github.com/strideapp/stride/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

func orderedInstances(database *gorm.DB) *gorm.DB {
	return database.Order("date ASC, id ASC")
}

func (repo *WorkoutRepository) ListByUser(userID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Preload("Instances", orderedInstances).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListByUserWithActivity(userID uint) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Preload("Instances", orderedInstances).
		Preload("Activity").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) ListAllWithActivity() ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.
		Preload("Instances", orderedInstances).
		Preload("Activity").
		Order("id ASC").
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) FindByUserAndActivity(userID uint, activityID uint) (models.Workout, bool, error) {
	workout := models.Workout{}
	result := repo.database.
		Preload("Instances", orderedInstances).
		Where("user_id = ? AND activity_id = ?", userID, activityID).
		Limit(1).
		Find(&workout)
	if result.Error != nil {
		return models.Workout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Workout{}, false, nil
	}
	return workout, true, nil
}

func (repo *WorkoutRepository) FindByID(workoutID uint) (models.Workout, bool, error) {
	workout := models.Workout{}
	result := repo.database.
		Preload("Instances", orderedInstances).
		Limit(1).
		Find(&workout, workoutID)
	if result.Error != nil {
		return models.Workout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Workout{}, false, nil
	}
	return workout, true, nil
}

func (repo *WorkoutRepository) Create(workout *models.Workout) error {
	return repo.database.Create(workout).Error
}

// ReplaceInstances makes the stored instance set of the workout equal to the
// given set: rows missing from it are deleted, the rest upserted. The new set
// is computed fully in memory by the caller before this single transaction.
func (repo *WorkoutRepository) ReplaceInstances(workout *models.Workout, instances []models.Instance) error {
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		keptIDs := make([]uint, 0, len(instances))
		for index := range instances {
			instances[index].WorkoutID = workout.ID
			if instances[index].ID != 0 {
				keptIDs = append(keptIDs, instances[index].ID)
			}
		}

		deletion := tx.Where("workout_id = ?", workout.ID)
		if len(keptIDs) > 0 {
			deletion = deletion.Where("id NOT IN ?", keptIDs)
		}
		if err := deletion.Delete(&models.Instance{}).Error; err != nil {
			return err
		}

		if len(instances) == 0 {
			return nil
		}
		return tx.Save(&instances).Error
	})
	if err != nil {
		return err
	}

	workout.Instances = instances
	return nil
}

func (repo *WorkoutRepository) Delete(workoutID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("workout_id = ?", workoutID).Delete(&models.Instance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Workout{}, workoutID).Error
	})
}
