package server

import (
	"bookclub/internal/middleware"
	"bookclub/internal/models"
	"bookclub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetThreads handles GET /clubs/:clubId/threads
func (s *Server) GetThreads(c *fiber.Ctx) error {
	threads, err := s.threadService.ListThreads(c.UserContext(), c.Params("clubId"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, threads)
}

// CreateThread handles POST /clubs/:clubId/threads
func (s *Server) CreateThread(c *fiber.Ctx) error {
	var req models.CreateThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	thread, err := s.threadService.CreateThread(c.UserContext(), middleware.Email(c), service.CreateThreadInput{
		ClubID:  c.Params("clubId"),
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return respondError(c, err)
	}

	return models.RespondWithData(c, thread)
}

// GetThread handles GET /clubs/:clubId/threads/:threadId
func (s *Server) GetThread(c *fiber.Ctx) error {
	thread, err := s.threadService.GetThread(c.UserContext(), c.Params("clubId"), c.Params("threadId"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, thread)
}

// DeleteThread handles DELETE /clubs/:clubId/threads/:threadId
func (s *Server) DeleteThread(c *fiber.Ctx) error {
	res, err := s.threadService.DeleteThread(
		c.UserContext(), middleware.Email(c), c.Params("clubId"), c.Params("threadId"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, res)
}

// AddComment handles POST /clubs/:clubId/threads/:threadId/comments
func (s *Server) AddComment(c *fiber.Ctx) error {
	var req models.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.threadService.AddComment(
		c.UserContext(), middleware.Email(c), c.Params("clubId"), c.Params("threadId"), req.Content)
	if err != nil {
		return respondError(c, err)
	}

	return models.RespondWithData(c, comment)
}

// DeleteComment handles DELETE /clubs/:clubId/threads/:threadId/comments/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	res, err := s.threadService.DeleteComment(
		c.UserContext(), middleware.Email(c), c.Params("clubId"), c.Params("threadId"), c.Params("commentId"))
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, res)
}
