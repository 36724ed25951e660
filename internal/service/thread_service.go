package service

import (
	"context"
	"time"

	"bookclub/internal/models"
	"bookclub/internal/repository"
)

// ThreadService owns discussion threads and their comments.
type ThreadService struct {
	clubs    repository.ClubRepository
	threads  repository.ThreadRepository
	comments repository.CommentRepository
}

// NewThreadService creates a ThreadService.
func NewThreadService(
	clubs repository.ClubRepository,
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
) *ThreadService {
	return &ThreadService{clubs: clubs, threads: threads, comments: comments}
}

// CreateThreadInput is the service-level payload for opening a thread.
type CreateThreadInput struct {
	ClubID  string
	Title   string
	Content string
}

// DeleteThreadResult reports a successful thread deletion.
type DeleteThreadResult struct {
	Message         string `json:"message"`
	DeletedThreadID string `json:"deletedThreadId"`
}

// DeleteCommentResult reports a successful comment deletion.
type DeleteCommentResult struct {
	Message          string `json:"message"`
	DeletedCommentID string `json:"deletedCommentId"`
}

// ListThreads returns all threads under the club.
func (s *ThreadService) ListThreads(ctx context.Context, clubID string) ([]*models.Thread, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, err
	}

	threads, err := s.threads.ListByClub(ctx, clubID)
	if err != nil {
		return nil, models.WrapInternalError("Failed to fetch threads", err)
	}
	if threads == nil {
		threads = []*models.Thread{}
	}
	return threads, nil
}

// CreateThread opens a new thread under an existing club.
func (s *ThreadService) CreateThread(ctx context.Context, actor string, in CreateThreadInput) (*models.Thread, error) {
	if err := s.requireClub(ctx, in.ClubID); err != nil {
		return nil, err
	}

	thread := &models.Thread{
		ClubID:    in.ClubID,
		Title:     in.Title,
		Content:   in.Content,
		CreatedBy: actor,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.threads.Create(ctx, thread); err != nil {
		return nil, models.WrapInternalError("Failed to create thread", err)
	}

	return thread, nil
}

// GetThread fetches one thread under the club.
func (s *ThreadService) GetThread(ctx context.Context, clubID, threadID string) (*models.Thread, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, err
	}

	thread, err := s.threads.GetByID(ctx, clubID, threadID)
	if err != nil {
		return nil, models.WrapInternalError("Failed to fetch thread", err)
	}
	if thread == nil {
		return nil, models.NewNotFoundError("Thread")
	}
	return thread, nil
}

// DeleteThread removes a thread and all of its comments. Only the thread's
// creator may delete it. Comments are deleted first, one by one; a failure
// mid-cascade is surfaced and already-deleted comments stay deleted.
func (s *ThreadService) DeleteThread(ctx context.Context, actor, clubID, threadID string) (*DeleteThreadResult, error) {
	thread, err := s.GetThread(ctx, clubID, threadID)
	if err != nil {
		return nil, err
	}

	if thread.CreatedBy != actor {
		return nil, models.NewForbiddenError("Not authorized to delete this thread")
	}

	comments, err := s.comments.ListByThread(ctx, clubID, threadID)
	if err != nil {
		return nil, models.WrapInternalError("Failed to delete thread", err)
	}
	for _, comment := range comments {
		if err := s.comments.Delete(ctx, clubID, threadID, comment.ID); err != nil {
			return nil, models.WrapInternalError("Failed to delete thread", err)
		}
	}

	if err := s.threads.Delete(ctx, clubID, threadID); err != nil {
		return nil, models.WrapInternalError("Failed to delete thread", err)
	}

	return &DeleteThreadResult{Message: "Thread deleted!", DeletedThreadID: threadID}, nil
}

// AddComment posts a comment under an existing thread.
func (s *ThreadService) AddComment(ctx context.Context, actor, clubID, threadID, content string) (*models.Comment, error) {
	if _, err := s.GetThread(ctx, clubID, threadID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   content,
		CreatedBy: actor,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, clubID, threadID, comment); err != nil {
		return nil, models.WrapInternalError("Failed to add comment", err)
	}

	return comment, nil
}

// DeleteComment removes one comment. Only its author may delete it.
func (s *ThreadService) DeleteComment(ctx context.Context, actor, clubID, threadID, commentID string) (*DeleteCommentResult, error) {
	if err := s.requireClub(ctx, clubID); err != nil {
		return nil, err
	}

	comment, err := s.comments.GetByID(ctx, clubID, threadID, commentID)
	if err != nil {
		return nil, models.WrapInternalError("Failed to fetch comment", err)
	}
	if comment == nil {
		return nil, models.NewNotFoundError("Comment")
	}

	if comment.CreatedBy != actor {
		return nil, models.NewForbiddenError("You are not authorized to delete this comment")
	}

	if err := s.comments.Delete(ctx, clubID, threadID, commentID); err != nil {
		return nil, models.WrapInternalError("Failed to delete comment", err)
	}

	return &DeleteCommentResult{Message: "Comment deleted!", DeletedCommentID: commentID}, nil
}

func (s *ThreadService) requireClub(ctx context.Context, clubID string) error {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return models.WrapInternalError("Failed to fetch club", err)
	}
	if club == nil {
		return models.NewNotFoundError("Club")
	}
	return nil
}
