package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/models"
)

func userJSON(user *models.User) fiber.Map {
	return fiber.Map{
		"id":              user.ID,
		"name":            user.Name,
		"email":           user.Email,
		"location":        user.Location,
		"activeChallenge": user.ActiveChallenge,
	}
}

// abbreviateName shortens "Tommy Lee Jones" to "Tommy L." for the public user
// listing; single-word names pass through untouched.
func abbreviateName(name string) string {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) <= 1 {
		return strings.TrimSpace(name)
	}
	return parts[0] + " " + parts[1][:1] + "."
}

func activityJSON(activity *models.Activity) fiber.Map {
	return fiber.Map{
		"id":          activity.ID,
		"name":        activity.Name,
		"slug":        activity.Slug,
		"points":      activity.Points,
		"type":        activity.Type,
		"unit":        activity.Unit,
		"description": activity.Description,
		"url":         activity.URL,
		"icon":        activity.Icon,
	}
}

func instanceJSON(instance *models.Instance) fiber.Map {
	return fiber.Map{
		"id":     instance.ID,
		"date":   instance.Date.Format(dateLayout),
		"amount": instance.Amount,
	}
}

func workoutJSON(workout *models.Workout) fiber.Map {
	instances := make([]fiber.Map, 0, len(workout.Instances))
	for index := range workout.Instances {
		instances = append(instances, instanceJSON(&workout.Instances[index]))
	}

	payload := fiber.Map{
		"id":        workout.ID,
		"user":      workout.UserID,
		"activity":  workout.ActivityID,
		"instances": instances,
	}
	if workout.Activity != nil {
		payload["activity"] = activityJSON(workout.Activity)
	}
	return payload
}

func workoutsJSON(workouts []models.Workout) []fiber.Map {
	payload := make([]fiber.Map, 0, len(workouts))
	for index := range workouts {
		payload = append(payload, workoutJSON(&workouts[index]))
	}
	return payload
}
