package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(userJSON(user))
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.authService.ListUsers()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list users")
	}

	listing := make([]fiber.Map, 0, len(users))
	for index := range users {
		listing = append(listing, fiber.Map{
			"id":   users[index].ID,
			"name": abbreviateName(users[index].Name),
		})
	}
	return c.JSON(listing)
}

func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	targetID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid user id")
	}
	if targetID != user.ID {
		return apiError(c, fiber.StatusBadRequest, "can only update your own info")
	}

	input := profileUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.ActiveChallenge != nil {
		updates["active_challenge"] = *input.ActiveChallenge
	}
	if len(updates) > 0 {
		if err := handler.authService.UpdateProfile(user.ID, updates); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to update user")
		}
	}

	updated, err := handler.authService.FindByID(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}
	return c.JSON(userJSON(&updated))
}
