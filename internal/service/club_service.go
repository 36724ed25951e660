package service

import (
	"context"
	"strings"
	"time"

	"bookclub/internal/models"
	"bookclub/internal/repository"

	"github.com/google/uuid"
)

// ClubService owns club lifecycle and membership.
type ClubService struct {
	clubs repository.ClubRepository
}

// NewClubService creates a ClubService.
func NewClubService(clubs repository.ClubRepository) *ClubService {
	return &ClubService{clubs: clubs}
}

// CreateClubInput is the service-level payload for creating a club.
type CreateClubInput struct {
	Name        string
	Description string
	CurrentBook string
	Members     []string
}

// MembershipResult reports the outcome of a join or leave operation.
// ClubID is omitted for informational no-ops, matching the wire shape.
type MembershipResult struct {
	Message string `json:"message"`
	ClubID  string `json:"clubId,omitempty"`
}

// DeleteClubResult reports a successful club deletion.
type DeleteClubResult struct {
	Message       string `json:"message"`
	DeletedClubID string `json:"deletedClubId"`
}

// CurrentBookResult reports a current-book mutation.
type CurrentBookResult struct {
	Message     string `json:"message"`
	ClubID      string `json:"clubId"`
	CurrentBook string `json:"currentBook,omitempty"`
}

// List returns every club in the store.
func (s *ClubService) List(ctx context.Context) ([]*models.Club, error) {
	clubs, err := s.clubs.List(ctx)
	if err != nil {
		return nil, models.WrapInternalError("Failed to fetch clubs", err)
	}
	if clubs == nil {
		clubs = []*models.Club{}
	}
	return clubs, nil
}

// Create persists a new club. The actor is always added to the member list.
func (s *ClubService) Create(ctx context.Context, actor string, in CreateClubInput) (*models.Club, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Club name is required")
	}

	// Dedup while preserving the supplied order; the creator goes last
	// unless already listed.
	seen := make(map[string]bool)
	members := make([]string, 0, len(in.Members)+1)
	for _, m := range append(append([]string{}, in.Members...), actor) {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		members = append(members, m)
	}

	club := &models.Club{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   actor,
		Members:     members,
		CreatedAt:   time.Now().UTC(),
	}
	if in.CurrentBook != "" {
		book := in.CurrentBook
		club.CurrentBook = &book
	}

	if err := s.clubs.Create(ctx, club); err != nil {
		return nil, models.WrapInternalError("Failed to create club", err)
	}

	return club, nil
}

// Join adds the actor to the club's member set. Joining twice is an
// informational no-op.
func (s *ClubService) Join(ctx context.Context, actor, clubID string) (*MembershipResult, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if club.IsMember(actor) {
		return &MembershipResult{Message: "Already a member"}, nil
	}

	if err := s.clubs.AddMember(ctx, clubID, actor); err != nil {
		return nil, models.WrapInternalError("Failed to join club", err)
	}

	return &MembershipResult{Message: "Joined club!", ClubID: club.ID}, nil
}

// Leave removes the actor from the club's member set. Leaving a club one is
// not a member of is an informational no-op.
func (s *ClubService) Leave(ctx context.Context, actor, clubID string) (*MembershipResult, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if !club.IsMember(actor) {
		return &MembershipResult{Message: "You are not a member of this club"}, nil
	}

	updated := make([]string, 0, len(club.Members))
	for _, m := range club.Members {
		if m != actor {
			updated = append(updated, m)
		}
	}

	if err := s.clubs.SetMembers(ctx, clubID, updated); err != nil {
		return nil, models.WrapInternalError("Failed to leave club", err)
	}

	return &MembershipResult{Message: "Left the club", ClubID: club.ID}, nil
}

// Delete removes the club document. Only the creator may delete a club.
// Threads and comments under the club are not cascaded; see DESIGN.md.
func (s *ClubService) Delete(ctx context.Context, actor, clubID string) (*DeleteClubResult, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if club.CreatedBy != actor {
		return nil, models.NewForbiddenError("Not authorized to delete this club")
	}

	if err := s.clubs.Delete(ctx, clubID); err != nil {
		return nil, models.WrapInternalError("Failed to delete club", err)
	}

	return &DeleteClubResult{Message: "Club deleted!", DeletedClubID: clubID}, nil
}

// SetCurrentBook updates the club's current book.
func (s *ClubService) SetCurrentBook(ctx context.Context, clubID, book string) (*CurrentBookResult, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(book) == "" {
		return nil, models.NewValidationError("Current book must not be blank")
	}

	if err := s.clubs.SetCurrentBook(ctx, clubID, book); err != nil {
		return nil, models.WrapInternalError("Failed to update current book", err)
	}

	return &CurrentBookResult{Message: "Current book updated!", ClubID: club.ID, CurrentBook: book}, nil
}

// ClearCurrentBook removes the current-book field from the club entirely,
// which is distinct from setting it to an empty string.
func (s *ClubService) ClearCurrentBook(ctx context.Context, clubID string) (*CurrentBookResult, error) {
	club, err := s.getClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	if err := s.clubs.ClearCurrentBook(ctx, clubID); err != nil {
		return nil, models.WrapInternalError("Failed to remove current book", err)
	}

	return &CurrentBookResult{Message: "Current book removed from club", ClubID: club.ID}, nil
}

func (s *ClubService) getClub(ctx context.Context, clubID string) (*models.Club, error) {
	club, err := s.clubs.GetByID(ctx, clubID)
	if err != nil {
		return nil, models.WrapInternalError("Failed to fetch club", err)
	}
	if club == nil {
		return nil, models.NewNotFoundError("Club")
	}
	return club, nil
}
