package handler

import (
	"errors"
	"strconv"

	"go-inventory-tracker/internal/inventory"
	"go-inventory-tracker/internal/middleware"
	"go-inventory-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

func localString(c *fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return v
}

// operator builds the acting operator from the JWT context (set by auth middleware).
func operator(c *fiber.Ctx) service.Operator {
	return service.Operator{
		ID:    localString(c, middleware.LocalUserID),
		Name:  localString(c, middleware.LocalUserName),
		Email: localString(c, middleware.LocalUserEmail),
	}
}

func paramID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// respondError maps store errors to 400/404 and anything else to 500.
func respondError(c *fiber.Ctx, err error) error {
	var ve *inventory.ValidationError
	if errors.As(err, &ve) {
		return c.Status(400).JSON(fiber.Map{"error": err.Error(), "field": ve.Field, "rule": ve.Rule})
	}
	if inventory.IsNotFound(err) {
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
