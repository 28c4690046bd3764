package models

import "time"

type User struct {
	ID              uint   `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	Email           string `gorm:"uniqueIndex;not null"`
	PasswordHash    string `gorm:"not null"`
	Location        string
	ActiveChallenge *uint
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time
}
