package service

import (
	"context"
	"strings"

	"bookclub/internal/gateway"
	"bookclub/internal/models"
)

// Default pagination for book searches.
const (
	DefaultSearchPage  = 1
	DefaultSearchLimit = 10
)

// BookService fronts the external book catalog.
type BookService struct {
	searcher gateway.BookSearcher
}

// NewBookService creates a BookService.
func NewBookService(searcher gateway.BookSearcher) *BookService {
	return &BookService{searcher: searcher}
}

// Search queries the external catalog. A blank query is rejected before any
// outbound call is made; a successful query with zero matches is NotFound.
func (s *BookService) Search(ctx context.Context, query string, page, limit int) ([]models.Book, error) {
	if strings.TrimSpace(query) == "" {
		return nil, models.NewValidationError("Missing search query")
	}

	if page < 1 {
		page = DefaultSearchPage
	}
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	offset := (page - 1) * limit

	books, err := s.searcher.Search(ctx, query, limit, offset)
	if err != nil {
		return nil, models.WrapInternalError("Book search failed", err)
	}

	if len(books) == 0 {
		return nil, &models.AppError{Code: models.CodeNotFound, Message: "No books found for this query"}
	}

	return books, nil
}
