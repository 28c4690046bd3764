package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/services"
)

func (handler *Handler) ListActivities(c *fiber.Ctx) error {
	activities, err := handler.activityService.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list activities")
	}

	listing := make([]fiber.Map, 0, len(activities))
	for index := range activities {
		listing = append(listing, activityJSON(&activities[index]))
	}
	return c.JSON(listing)
}

func (handler *Handler) CreateActivity(c *fiber.Ctx) error {
	input := activityInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	activity, err := handler.activityService.Create(services.ActivityInput{
		Name:        input.Name,
		Points:      input.Points,
		Type:        input.Type,
		Unit:        input.Unit,
		Description: input.Description,
		URL:         input.URL,
		Icon:        input.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrActivityNameRequired):
			return apiError(c, fiber.StatusBadRequest, "activity name is required")
		case errors.Is(err, services.ErrActivityNameTaken):
			return apiError(c, fiber.StatusConflict, "activity name would not be unique as a URL")
		default:
			return apiError(c, fiber.StatusInternalServerError, "could not add the activity")
		}
	}

	return c.Status(fiber.StatusCreated).JSON(activityJSON(&activity))
}
