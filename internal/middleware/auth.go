// Package middleware provides authentication, logging, and tracing middleware for the application.
package middleware

import (
	"strings"

	"bookclub/internal/models"
	"bookclub/internal/token"

	"github.com/gofiber/fiber/v2"
)

// EmailLocalKey is the Fiber locals key under which the authenticated
// principal's email is stored.
const EmailLocalKey = "email"

// AuthRequired enforces a valid bearer token and stores the email claim in locals.
func AuthRequired(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := principalFromHeader(c, tokens)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or missing token"))
		}
		c.Locals(EmailLocalKey, email)
		return c.Next()
	}
}

// AuthOptional extracts the email claim when a valid bearer token is present
// but lets the request through either way. Routes under it must not rely on a
// principal being set.
func AuthOptional(tokens *token.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if email, ok := principalFromHeader(c, tokens); ok {
			c.Locals(EmailLocalKey, email)
		}
		return c.Next()
	}
}

// Email returns the authenticated principal's email, or "" if the request is
// unauthenticated.
func Email(c *fiber.Ctx) string {
	if email, ok := c.Locals(EmailLocalKey).(string); ok {
		return email
	}
	return ""
}

func principalFromHeader(c *fiber.Ctx, tokens *token.Service) (string, bool) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", false
	}

	// Extract token from "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	return tokens.Verify(parts[1])
}
