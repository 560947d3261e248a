package handler

import (
	"errors"
	"log"
	"strings"

	"go-inventory-tracker/internal/service"
	"go-inventory-tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type signInBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenBody struct {
	Token string `json:"token"`
}

// authStatus maps auth failures to a status code. Unknown errors are 500.
func authStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUserInactive):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrSessionReplaced),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, jwt.ErrInvalidToken),
		errors.Is(err, jwt.ErrMissingToken):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func respondAuthError(c *fiber.Ctx, err error) error {
	status := authStatus(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Error: auth request failed: %v", err)
		return c.Status(status).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// Login signs an operator in and returns a bearer token with their privileges.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body signInBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" || body.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email and password are required"})
	}

	session, err := h.auth.Login(body.Email, body.Password)
	if err != nil {
		return respondAuthError(c, err)
	}
	return c.JSON(session)
}

// ValidateToken reports the operator behind a token.
// POST /api/v1/auth/validate-token
func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var body tokenBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if body.Token == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Token is required"})
	}

	who, err := h.auth.ValidateToken(body.Token)
	if err != nil {
		return respondAuthError(c, err)
	}
	return c.JSON(who)
}
