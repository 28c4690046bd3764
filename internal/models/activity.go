package models

import "time"

// Activity is a catalog entry describing one kind of trackable exercise.
// Activities are created once and never updated; workouts reference them by id.
type Activity struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Slug        string `gorm:"not null;uniqueIndex:uidx_activity_slug"`
	Points      int    `gorm:"not null;default:0"`
	Type        string
	Unit        string
	Description string
	URL         string
	Icon        string
	CreatedAt   time.Time `gorm:"not null"`
}
