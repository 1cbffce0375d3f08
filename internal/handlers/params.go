package handlers

import (
	"fmt"
	"strconv"
	"time"

	"crm/internal/models"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps domain error kinds onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case models.IsValidation(err):
		return fiber.StatusBadRequest
	case models.IsConflict(err):
		return fiber.StatusConflict
	case models.IsNotFound(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// parseTimeQuery reads an optional time query parameter, accepting RFC 3339
// or a bare date (interpreted at midnight UTC).
func parseTimeQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("invalid %s: expected RFC3339 or YYYY-MM-DD, got %q", name, raw)
}

// parseFloatQuery reads an optional float query parameter.
func parseFloatQuery(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected a number, got %q", name, raw)
	}
	return &f, nil
}

// parseIntQuery reads an optional integer query parameter.
func parseIntQuery(c *fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected an integer, got %q", name, raw)
	}
	return &n, nil
}
