package services

import (
	"errors"
	"time"

	"github.com/strideapp/stride/internal/models"
)

var (
	ErrNegativeAmount    = errors.New("amount must not be negative")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrNotWorkoutOwner   = errors.New("workout belongs to another user")
	ErrWorkoutLoadFailed = errors.New("load workout failed")
	ErrWorkoutSaveFailed = errors.New("save workout failed")
)

type WorkoutStore interface {
	ListByUser(userID uint) ([]models.Workout, error)
	ListByUserWithActivity(userID uint) ([]models.Workout, error)
	ListAllWithActivity() ([]models.Workout, error)
	FindByUserAndActivity(userID uint, activityID uint) (models.Workout, bool, error)
	FindByID(workoutID uint) (models.Workout, bool, error)
	Create(workout *models.Workout) error
	ReplaceInstances(workout *models.Workout, instances []models.Instance) error
	Delete(workoutID uint) error
}

type WorkoutActivityStore interface {
	FindByID(activityID uint) (models.Activity, bool, error)
}

// WorkoutService owns the one-record-per-(user, activity) ledger: submissions
// merge into the existing record or create it, instance edits mutate it, and
// removing the last instance removes the record.
type WorkoutService struct {
	workouts   WorkoutStore
	activities WorkoutActivityStore
}

func NewWorkoutService(workouts WorkoutStore, activities WorkoutActivityStore) *WorkoutService {
	return &WorkoutService{
		workouts:   workouts,
		activities: activities,
	}
}

func (service *WorkoutService) ListForUser(userID uint) ([]models.Workout, error) {
	return service.workouts.ListByUser(userID)
}

func (service *WorkoutService) ListForUserWithActivity(userID uint) ([]models.Workout, error) {
	return service.workouts.ListByUserWithActivity(userID)
}

func (service *WorkoutService) ListAllWithActivity() ([]models.Workout, error) {
	return service.workouts.ListAllWithActivity()
}

// Submit records an amount for (userID, activityID) on the given day. The
// second result reports whether a new workout was created rather than merged
// into. userID comes from the authenticated caller, so submissions are always
// self-scoped and need no ownership check.
func (service *WorkoutService) Submit(userID uint, activityID uint, day time.Time, amount float64) (models.Workout, bool, error) {
	if amount < 0 {
		return models.Workout{}, false, ErrNegativeAmount
	}

	if _, found, err := service.activities.FindByID(activityID); err != nil {
		return models.Workout{}, false, ErrWorkoutLoadFailed
	} else if !found {
		return models.Workout{}, false, ErrActivityNotFound
	}

	workout, found, err := service.workouts.FindByUserAndActivity(userID, activityID)
	if err != nil {
		return models.Workout{}, false, ErrWorkoutLoadFailed
	}
	if found {
		merged, err := service.mergeAndSave(workout, day, amount)
		return merged, false, err
	}

	workout = models.Workout{
		UserID:     userID,
		ActivityID: activityID,
		Instances:  []models.Instance{{Date: day, Amount: amount}},
	}
	if createErr := service.workouts.Create(&workout); createErr != nil {
		// A concurrent first submission may have won the uidx_user_activity
		// race; retry once as a merge-update before giving up.
		existing, foundNow, findErr := service.workouts.FindByUserAndActivity(userID, activityID)
		if findErr != nil || !foundNow {
			return models.Workout{}, false, ErrWorkoutSaveFailed
		}
		merged, err := service.mergeAndSave(existing, day, amount)
		return merged, false, err
	}
	return workout, true, nil
}

func (service *WorkoutService) mergeAndSave(workout models.Workout, day time.Time, amount float64) (models.Workout, error) {
	merged := MergeInstances(workout.Instances, day, amount)
	if err := service.workouts.ReplaceInstances(&workout, merged); err != nil {
		return models.Workout{}, ErrWorkoutSaveFailed
	}
	return workout, nil
}

// UpdateInstance edits one instance of the caller's workout. Setting the
// amount to zero removes the instance, and removing the last instance deletes
// the workout; the second result reports that deletion. Workouts of other
// users answer as not found so the edit path leaks no more than the delete
// path does.
func (service *WorkoutService) UpdateInstance(callerID uint, workoutID uint, instanceID uint, day time.Time, amount float64) (models.Workout, bool, error) {
	if amount < 0 {
		return models.Workout{}, false, ErrNegativeAmount
	}

	workout, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return models.Workout{}, false, ErrWorkoutLoadFailed
	}
	if !found || workout.UserID != callerID {
		return models.Workout{}, false, ErrWorkoutNotFound
	}

	if _, found, err := service.activities.FindByID(workout.ActivityID); err != nil {
		return models.Workout{}, false, ErrWorkoutLoadFailed
	} else if !found {
		return models.Workout{}, false, ErrActivityNotFound
	}

	edited, deleteWorkout, err := ApplyInstanceEdit(workout.Instances, instanceID, day, amount)
	if err != nil {
		return models.Workout{}, false, err
	}

	if deleteWorkout {
		if err := service.workouts.Delete(workout.ID); err != nil {
			return models.Workout{}, false, ErrWorkoutSaveFailed
		}
		return models.Workout{}, true, nil
	}

	if err := service.workouts.ReplaceInstances(&workout, edited); err != nil {
		return models.Workout{}, false, ErrWorkoutSaveFailed
	}
	return workout, false, nil
}

// Delete removes the caller's workout with all its instances. Workouts owned
// by someone else fail with ErrNotWorkoutOwner, which the transport reports
// as not found to avoid confirming their existence.
func (service *WorkoutService) Delete(callerID uint, workoutID uint) error {
	workout, found, err := service.workouts.FindByID(workoutID)
	if err != nil {
		return ErrWorkoutLoadFailed
	}
	if !found {
		return ErrWorkoutNotFound
	}
	if workout.UserID != callerID {
		return ErrNotWorkoutOwner
	}

	if err := service.workouts.Delete(workout.ID); err != nil {
		return ErrWorkoutSaveFailed
	}
	return nil
}
