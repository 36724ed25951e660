package models

import "time"

// Club represents a book club with its membership and current read.
type Club struct {
	ID          string    `json:"id" firestore:"id"`
	Name        string    `json:"name" firestore:"name"`
	Description string    `json:"description" firestore:"description"`
	CreatedBy   string    `json:"createdBy" firestore:"createdBy"`
	Members     []string  `json:"members" firestore:"members"`
	CurrentBook *string   `json:"currentBook,omitempty" firestore:"currentBook,omitempty"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// IsMember reports whether the given email is in the club's member list.
func (c *Club) IsMember(email string) bool {
	for _, m := range c.Members {
		if m == email {
			return true
		}
	}
	return false
}

// CreateClubRequest is the payload for creating a new club.
type CreateClubRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CurrentBook string   `json:"currentBook"`
	Members     []string `json:"members"`
}

// CurrentBookRequest is the payload for updating a club's current book.
type CurrentBookRequest struct {
	CurrentBook string `json:"currentBook"`
}
