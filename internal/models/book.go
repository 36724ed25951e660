package models

// Book holds the catalog metadata returned by the external book search.
// Books are never persisted; they exist only in search responses.
type Book struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Thumbnail *string  `json:"thumbnail,omitempty"`
}
