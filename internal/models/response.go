package models

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Response is the uniform envelope wrapped around every JSON endpoint.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondWithData writes a success envelope with the given payload.
func RespondWithData(c *fiber.Ctx, data any) error {
	return c.JSON(Response{Success: true, Data: data})
}

// RespondWithError writes a failure envelope with the given status code.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(Response{Success: false, Error: err.Error()})
}

// StatusForError maps an application error to its HTTP status code.
// Unknown errors are treated as internal failures.
func StatusForError(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeValidation:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeUnprocessable:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
