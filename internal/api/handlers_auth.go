package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/strideapp/stride/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Register(services.Registration{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Location: input.Location,
		Secret:   input.Secret,
	})
	switch {
	case errors.Is(err, services.ErrRegisterSecretInvalid):
		return apiError(c, fiber.StatusBadRequest, "use the proper link to register")
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid email or password")
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusBadRequest, "you already have an account, log in instead")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	return c.Status(fiber.StatusCreated).JSON(userJSON(&user))
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid username or password")
	}

	token, err := handler.buildToken(&user, defaultAuthTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"token":           "Bearer " + token,
		"id":              user.ID,
		"name":            user.Name,
		"location":        user.Location,
		"activeChallenge": user.ActiveChallenge,
	})
}
