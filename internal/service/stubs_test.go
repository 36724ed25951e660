package service

import (
	"context"
	"errors"
	"testing"

	"bookclub/internal/models"
)

// clubRepoStub is a stub for repository.ClubRepository.
type clubRepoStub struct {
	listFn             func(context.Context) ([]*models.Club, error)
	getByIDFn          func(context.Context, string) (*models.Club, error)
	createFn           func(context.Context, *models.Club) error
	addMemberFn        func(context.Context, string, string) error
	setMembersFn       func(context.Context, string, []string) error
	setCurrentBookFn   func(context.Context, string, string) error
	clearCurrentBookFn func(context.Context, string) error
	deleteFn           func(context.Context, string) error
}

func (s *clubRepoStub) List(ctx context.Context) ([]*models.Club, error) { return s.listFn(ctx) }
func (s *clubRepoStub) GetByID(ctx context.Context, id string) (*models.Club, error) {
	return s.getByIDFn(ctx, id)
}
func (s *clubRepoStub) Create(ctx context.Context, club *models.Club) error {
	return s.createFn(ctx, club)
}
func (s *clubRepoStub) AddMember(ctx context.Context, id, email string) error {
	return s.addMemberFn(ctx, id, email)
}
func (s *clubRepoStub) SetMembers(ctx context.Context, id string, members []string) error {
	return s.setMembersFn(ctx, id, members)
}
func (s *clubRepoStub) SetCurrentBook(ctx context.Context, id, book string) error {
	return s.setCurrentBookFn(ctx, id, book)
}
func (s *clubRepoStub) ClearCurrentBook(ctx context.Context, id string) error {
	return s.clearCurrentBookFn(ctx, id)
}
func (s *clubRepoStub) Delete(ctx context.Context, id string) error { return s.deleteFn(ctx, id) }

func noopClubRepo() *clubRepoStub {
	return &clubRepoStub{
		listFn:             func(context.Context) ([]*models.Club, error) { return nil, nil },
		getByIDFn:          func(context.Context, string) (*models.Club, error) { return nil, nil },
		createFn:           func(context.Context, *models.Club) error { return nil },
		addMemberFn:        func(context.Context, string, string) error { return nil },
		setMembersFn:       func(context.Context, string, []string) error { return nil },
		setCurrentBookFn:   func(context.Context, string, string) error { return nil },
		clearCurrentBookFn: func(context.Context, string) error { return nil },
		deleteFn:           func(context.Context, string) error { return nil },
	}
}

// threadRepoStub is a stub for repository.ThreadRepository.
type threadRepoStub struct {
	listByClubFn func(context.Context, string) ([]*models.Thread, error)
	getByIDFn    func(context.Context, string, string) (*models.Thread, error)
	createFn     func(context.Context, *models.Thread) error
	deleteFn     func(context.Context, string, string) error
}

func (s *threadRepoStub) ListByClub(ctx context.Context, clubID string) ([]*models.Thread, error) {
	return s.listByClubFn(ctx, clubID)
}
func (s *threadRepoStub) GetByID(ctx context.Context, clubID, threadID string) (*models.Thread, error) {
	return s.getByIDFn(ctx, clubID, threadID)
}
func (s *threadRepoStub) Create(ctx context.Context, thread *models.Thread) error {
	return s.createFn(ctx, thread)
}
func (s *threadRepoStub) Delete(ctx context.Context, clubID, threadID string) error {
	return s.deleteFn(ctx, clubID, threadID)
}

func noopThreadRepo() *threadRepoStub {
	return &threadRepoStub{
		listByClubFn: func(context.Context, string) ([]*models.Thread, error) { return nil, nil },
		getByIDFn:    func(context.Context, string, string) (*models.Thread, error) { return nil, nil },
		createFn:     func(context.Context, *models.Thread) error { return nil },
		deleteFn:     func(context.Context, string, string) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	listByThreadFn func(context.Context, string, string) ([]*models.Comment, error)
	getByIDFn      func(context.Context, string, string, string) (*models.Comment, error)
	createFn       func(context.Context, string, string, *models.Comment) error
	deleteFn       func(context.Context, string, string, string) error
}

func (s *commentRepoStub) ListByThread(ctx context.Context, clubID, threadID string) ([]*models.Comment, error) {
	return s.listByThreadFn(ctx, clubID, threadID)
}
func (s *commentRepoStub) GetByID(ctx context.Context, clubID, threadID, commentID string) (*models.Comment, error) {
	return s.getByIDFn(ctx, clubID, threadID, commentID)
}
func (s *commentRepoStub) Create(ctx context.Context, clubID, threadID string, comment *models.Comment) error {
	return s.createFn(ctx, clubID, threadID, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, clubID, threadID, commentID string) error {
	return s.deleteFn(ctx, clubID, threadID, commentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		listByThreadFn: func(context.Context, string, string) ([]*models.Comment, error) { return nil, nil },
		getByIDFn:      func(context.Context, string, string, string) (*models.Comment, error) { return nil, nil },
		createFn:       func(context.Context, string, string, *models.Comment) error { return nil },
		deleteFn:       func(context.Context, string, string, string) error { return nil },
	}
}

// identityStub is a stub for identity.Provider.
type identityStub struct {
	createUserFn  func(context.Context, string, string) (*models.Account, error)
	customTokenFn func(context.Context, string) (string, error)
}

func (s *identityStub) CreateUser(ctx context.Context, email, password string) (*models.Account, error) {
	return s.createUserFn(ctx, email, password)
}
func (s *identityStub) CustomToken(ctx context.Context, email string) (string, error) {
	return s.customTokenFn(ctx, email)
}

func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *models.AppError, got %v", err)
	}
	if appErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, appErr.Code, appErr.Message)
	}
}
