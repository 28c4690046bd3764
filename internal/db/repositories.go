package db

import "gorm.io/gorm"

type Repositories struct {
	Users      *UserRepository
	Activities *ActivityRepository
	Workouts   *WorkoutRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(database),
		Activities: NewActivityRepository(database),
		Workouts:   NewWorkoutRepository(database),
	}
}
