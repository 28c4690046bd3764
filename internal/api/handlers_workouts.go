package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/services"
)

func (handler *Handler) ListMyWorkouts(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workouts, err := handler.workoutService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list workouts")
	}
	return c.JSON(workoutsJSON(workouts))
}

// ListAllWorkouts returns the whole dataset with activities resolved. Kept
// for the leaderboard view; prefer the per-user listings.
func (handler *Handler) ListAllWorkouts(c *fiber.Ctx) error {
	workouts, err := handler.workoutService.ListAllWithActivity()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list workouts")
	}
	return c.JSON(workoutsJSON(workouts))
}

func (handler *Handler) ListUserWorkouts(c *fiber.Ctx) error {
	targetID, err := parseUintParam(c, "userid")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}

	workouts, err := handler.workoutService.ListForUserWithActivity(targetID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list workouts")
	}
	return c.JSON(workoutsJSON(workouts))
}

func (handler *Handler) SubmitWorkout(c *fiber.Ctx) error {
	return handler.submitWorkout(c, 0)
}

func (handler *Handler) SubmitWorkoutForActivity(c *fiber.Ctx) error {
	activityID, err := parseUintParam(c, "activityid")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid activity id")
	}
	return handler.submitWorkout(c, activityID)
}

func (handler *Handler) submitWorkout(c *fiber.Ctx, activityID uint) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := submissionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if activityID == 0 {
		activityID = input.Activity
	}
	if activityID == 0 {
		return apiError(c, fiber.StatusBadRequest, "missing activity")
	}

	day, err := parseDay(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	if input.Amount == nil {
		return apiError(c, fiber.StatusBadRequest, "missing amount")
	}
	if *input.Amount < 0 {
		return apiError(c, fiber.StatusBadRequest, "amount must not be negative")
	}

	workout, created, err := handler.workoutService.Submit(user.ID, activityID, day, *input.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNegativeAmount):
			return apiError(c, fiber.StatusBadRequest, "amount must not be negative")
		case errors.Is(err, services.ErrActivityNotFound):
			return apiError(c, fiber.StatusNotFound, "could not find the activity")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save the workout")
		}
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(workoutJSON(&workout))
	}
	return c.JSON(workoutJSON(&workout))
}

func (handler *Handler) UpdateWorkoutInstance(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	input := instanceEditInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Instance.ID == 0 {
		return apiError(c, fiber.StatusBadRequest, "missing instance id")
	}
	if input.Instance.Amount == nil {
		return apiError(c, fiber.StatusBadRequest, "missing amount")
	}

	day, err := parseDay(input.Instance.Date)
	if err != nil && *input.Instance.Amount != 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	workout, deleted, err := handler.workoutService.UpdateInstance(user.ID, workoutID, input.Instance.ID, day, *input.Instance.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNegativeAmount):
			return apiError(c, fiber.StatusBadRequest, "amount must not be negative")
		case errors.Is(err, services.ErrWorkoutNotFound), errors.Is(err, services.ErrActivityNotFound):
			return apiError(c, fiber.StatusNotFound, "could not find the activity or the workout")
		case errors.Is(err, services.ErrInstanceNotFound):
			return apiError(c, fiber.StatusNotFound, "could not find the workout instance")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to update the workout")
		}
	}

	if deleted {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(workoutJSON(&workout))
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	if err := handler.workoutService.Delete(user.ID, workoutID); err != nil {
		switch {
		// Ownership failures answer as not found so the route confirms
		// nothing about other users' workouts.
		case errors.Is(err, services.ErrWorkoutNotFound), errors.Is(err, services.ErrNotWorkoutOwner):
			return apiError(c, fiber.StatusNotFound, "could not delete the workout")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to delete the workout")
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
