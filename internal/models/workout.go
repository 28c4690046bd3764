package models

import "time"

// Workout is the per-(user, activity) container of dated amount entries.
// At most one workout exists per pair, and a workout never persists with an
// empty instance set: removing the last instance removes the workout itself.
type Workout struct {
	ID         uint       `gorm:"primaryKey"`
	UserID     uint       `gorm:"not null;uniqueIndex:uidx_user_activity"`
	ActivityID uint       `gorm:"not null;uniqueIndex:uidx_user_activity"`
	Activity   *Activity  `gorm:"foreignKey:ActivityID"`
	Instances  []Instance `gorm:"foreignKey:WorkoutID"`
	CreatedAt  time.Time  `gorm:"not null"`
	UpdatedAt  time.Time
}

// Instance is a single day's amount within a workout. Dates are the merge
// key on submission: a same-day submission sums into the existing instance.
// The column is deliberately not unique per workout; a date edit may land an
// instance on an already occupied day.
type Instance struct {
	ID        uint      `gorm:"primaryKey"`
	WorkoutID uint      `gorm:"not null;index:idx_instances_workout"`
	Date      time.Time `gorm:"type:date;not null"`
	Amount    float64   `gorm:"not null;default:0"`
}
