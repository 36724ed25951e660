package server

import (
	"bookclub/internal/middleware"
	"bookclub/internal/models"
	"bookclub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetClubs handles GET /clubs
func (s *Server) GetClubs(c *fiber.Ctx) error {
	clubs, err := s.clubService.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, clubs)
}

// CreateClub handles POST /clubs
func (s *Server) CreateClub(c *fiber.Ctx) error {
	var req models.CreateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	club, err := s.clubService.Create(c.UserContext(), middleware.Email(c), service.CreateClubInput{
		Name:        req.Name,
		Description: req.Description,
		CurrentBook: req.CurrentBook,
		Members:     req.Members,
	})
	if err != nil {
		return respondError(c, err)
	}

	return models.RespondWithData(c, club)
}

// JoinClub handles POST /clubs/:id/join
func (s *Server) JoinClub(c *fiber.Ctx) error {
	res, err := s.clubService.Join(c.UserContext(), middleware.Email(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, res)
}

// LeaveClub handles DELETE /clubs/:id/leave
func (s *Server) LeaveClub(c *fiber.Ctx) error {
	res, err := s.clubService.Leave(c.UserContext(), middleware.Email(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, res)
}

// DeleteClub handles DELETE /clubs/:id
func (s *Server) DeleteClub(c *fiber.Ctx) error {
	res, err := s.clubService.Delete(c.UserContext(), middleware.Email(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, res)
}

// SetCurrentBook handles PATCH /clubs/:id/currentBook
func (s *Server) SetCurrentBook(c *fiber.Ctx) error {
	var req models.CurrentBookRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	res, err := s.clubService.SetCurrentBook(c.UserContext(), c.Params("id"), req.CurrentBook)
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, res)
}

// ClearCurrentBook handles DELETE /clubs/:id/currentBook
func (s *Server) ClearCurrentBook(c *fiber.Ctx) error {
	res, err := s.clubService.ClearCurrentBook(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, res)
}
