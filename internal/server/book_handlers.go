package server

import (
	"bookclub/internal/models"
	"bookclub/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SearchBooks handles GET /books/search?query=&page=&limit=
func (s *Server) SearchBooks(c *fiber.Ctx) error {
	books, err := s.bookService.Search(
		c.UserContext(),
		c.Query("query"),
		c.QueryInt("page", service.DefaultSearchPage),
		c.QueryInt("limit", service.DefaultSearchLimit),
	)
	if err != nil {
		return respondError(c, err)
	}
	return models.RespondWithData(c, books)
}
