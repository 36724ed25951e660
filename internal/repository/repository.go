// Package repository provides data access layer implementations for the application.
//
// Two interchangeable backends exist: a Firestore adapter used in deployment
// and a mutex-guarded in-memory store used for local runs and tests. Lookups
// return (nil, nil) when the document is absent; translating absence into a
// NotFound error is the service layer's job.
package repository

import (
	"context"

	"bookclub/internal/models"
)

// Collection names in the document store hierarchy
// clubs/{clubId}/threads/{threadId}/comments/{commentId}.
const (
	ClubsCollection    = "clubs"
	ThreadsCollection  = "threads"
	CommentsCollection = "comments"
)

// ClubRepository defines interface for club document operations.
type ClubRepository interface {
	List(ctx context.Context) ([]*models.Club, error)
	GetByID(ctx context.Context, id string) (*models.Club, error)
	Create(ctx context.Context, club *models.Club) error
	// AddMember must be an atomic set-union on the stored member list so
	// concurrent joins cannot lose updates.
	AddMember(ctx context.Context, id, email string) error
	SetMembers(ctx context.Context, id string, members []string) error
	SetCurrentBook(ctx context.Context, id, book string) error
	// ClearCurrentBook removes the field entirely; a subsequent read shows
	// it absent, not empty.
	ClearCurrentBook(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ThreadRepository defines interface for thread documents nested under a club.
type ThreadRepository interface {
	ListByClub(ctx context.Context, clubID string) ([]*models.Thread, error)
	GetByID(ctx context.Context, clubID, threadID string) (*models.Thread, error)
	// Create assigns a store-generated id to thread.ID before persisting.
	Create(ctx context.Context, thread *models.Thread) error
	Delete(ctx context.Context, clubID, threadID string) error
}

// CommentRepository defines interface for comment documents nested under a thread.
type CommentRepository interface {
	ListByThread(ctx context.Context, clubID, threadID string) ([]*models.Comment, error)
	GetByID(ctx context.Context, clubID, threadID, commentID string) (*models.Comment, error)
	// Create assigns a store-generated id to comment.ID before persisting.
	Create(ctx context.Context, clubID, threadID string, comment *models.Comment) error
	Delete(ctx context.Context, clubID, threadID, commentID string) error
}
