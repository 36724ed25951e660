// Package gateway contains clients for external services the backend calls
// through the network.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookclub/internal/models"
	"bookclub/internal/observability"
)

// DefaultBooksBaseURL is the production volumes API endpoint.
const DefaultBooksBaseURL = "https://www.googleapis.com/books/v1"

// BookSearcher issues catalog queries against the external books API.
type BookSearcher interface {
	Search(ctx context.Context, query string, limit, offset int) ([]models.Book, error)
}

// BooksClient is an HTTP adapter for the Google Books volumes API.
type BooksClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewBooksClient creates a BooksClient. An empty baseURL selects the
// production endpoint; apiKey is optional and appended when set.
func NewBooksClient(baseURL, apiKey string, timeout time.Duration) *BooksClient {
	if baseURL == "" {
		baseURL = DefaultBooksBaseURL
	}
	return &BooksClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// volumesResponse mirrors the slice of the external API shape we consume.
type volumesResponse struct {
	Items []struct {
		VolumeInfo struct {
			Title      string   `json:"title"`
			Authors    []string `json:"authors"`
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Search performs one GET against the volumes endpoint and maps each item
// into a Book. Missing titles and authors get placeholder values.
func (c *BooksClient) Search(ctx context.Context, query string, limit, offset int) (_ []models.Book, err error) {
	start := time.Now()
	defer func() { observability.BookSearchLatency.Observe(time.Since(start).Seconds()) }()

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	params.Set("startIndex", strconv.Itoa(offset))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	endpoint := c.baseURL + "/volumes?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build book search request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.BookSearchErrors.WithLabelValues("transport").Inc()
		return nil, fmt.Errorf("book search request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observability.BookSearchErrors.WithLabelValues("read").Inc()
		return nil, fmt.Errorf("read book search response: %w", err)
	}
	if len(body) == 0 {
		observability.BookSearchErrors.WithLabelValues("empty").Inc()
		return nil, fmt.Errorf("empty response from books API")
	}
	if resp.StatusCode != http.StatusOK {
		observability.BookSearchErrors.WithLabelValues("status").Inc()
		return nil, fmt.Errorf("books API returned status %d", resp.StatusCode)
	}

	var parsed volumesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		observability.BookSearchErrors.WithLabelValues("parse").Inc()
		return nil, fmt.Errorf("parse book search response: %w", err)
	}

	books := make([]models.Book, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		info := item.VolumeInfo

		title := info.Title
		if title == "" {
			title = "No Title"
		}

		authors := info.Authors
		if len(authors) == 0 {
			authors = []string{"Unknown Author"}
		}

		var thumbnail *string
		if info.ImageLinks.Thumbnail != "" {
			thumb := info.ImageLinks.Thumbnail
			thumbnail = &thumb
		}

		books = append(books, models.Book{
			Title:     title,
			Authors:   authors,
			Thumbnail: thumbnail,
		})
	}

	return books, nil
}
