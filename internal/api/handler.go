package api

import (
	"time"

	"github.com/strideapp/stride/internal/db"
	"github.com/strideapp/stride/internal/services"
	"gorm.io/gorm"
)

const defaultAuthTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	db              *gorm.DB
	secretKey       []byte
	repositories    *db.Repositories
	authService     *services.AuthService
	activityService *services.ActivityService
	workoutService  *services.WorkoutService
}

func NewHandler(database *gorm.DB, secretKey string, registerSecret string) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:              database,
		secretKey:       []byte(secretKey),
		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users, registerSecret),
		activityService: services.NewActivityService(repositories.Activities),
		workoutService:  services.NewWorkoutService(repositories.Workouts, repositories.Activities),
	}
}
