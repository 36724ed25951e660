package server

import (
	"bookclub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	account, err := s.authService.Signup(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return models.RespondWithData(c, account)
}

// Login handles POST /login
func (s *Server) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	signed, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return models.RespondWithData(c, fiber.Map{"token": signed})
}
