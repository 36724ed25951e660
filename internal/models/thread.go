package models

import "time"

// Thread represents a discussion topic nested under a club.
type Thread struct {
	ID        string    `json:"id" firestore:"id"`
	ClubID    string    `json:"clubId" firestore:"clubId"`
	Title     string    `json:"title" firestore:"title"`
	Content   string    `json:"content" firestore:"content"`
	CreatedBy string    `json:"createdBy" firestore:"createdBy"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// Comment represents a reply nested under a thread.
type Comment struct {
	ID        string    `json:"id" firestore:"id"`
	Content   string    `json:"content" firestore:"content"`
	CreatedBy string    `json:"createdBy" firestore:"createdBy"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

// CreateThreadRequest is the payload for opening a new discussion thread.
type CreateThreadRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateCommentRequest is the payload for posting a comment on a thread.
type CreateCommentRequest struct {
	Content string `json:"content"`
}
