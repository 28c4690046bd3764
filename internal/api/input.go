package api

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errors.New("invalid date")

// parseDay reads a YYYY-MM-DD calendar day. Instance dates carry no time
// component, so days normalize to midnight UTC.
func parseDay(raw string) (time.Time, error) {
	day, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return day.UTC(), nil
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(value), nil
}

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Location string `json:"location"`
	Secret   string `json:"secret"`
}

type profileUpdateInput struct {
	Name            *string `json:"name"`
	Location        *string `json:"location"`
	ActiveChallenge *uint   `json:"activeChallenge"`
}

type activityInput struct {
	Name        string `json:"name"`
	Points      int    `json:"points"`
	Type        string `json:"type"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Icon        string `json:"icon"`
}

type submissionInput struct {
	Activity uint     `json:"activity"`
	Date     string   `json:"date"`
	Amount   *float64 `json:"amount"`
}

type instanceEditInput struct {
	Instance struct {
		ID     uint     `json:"id"`
		Date   string   `json:"date"`
		Amount *float64 `json:"amount"`
	} `json:"instance"`
}
