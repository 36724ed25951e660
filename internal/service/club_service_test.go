package service

import (
	"context"
	"errors"
	"testing"

	"bookclub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClubService_List(t *testing.T) {
	t.Parallel()

	t.Run("nil slice from store becomes empty slice", func(t *testing.T) {
		t.Parallel()
		repo := noopClubRepo()
		svc := NewClubService(repo)

		clubs, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, clubs)
		assert.Empty(t, clubs)
	})

	t.Run("store error wraps internal", func(t *testing.T) {
		t.Parallel()
		repo := noopClubRepo()
		repo.listFn = func(context.Context) ([]*models.Club, error) {
			return nil, errors.New("boom")
		}
		svc := NewClubService(repo)

		_, err := svc.List(context.Background())
		assertAppErrorCode(t, err, models.CodeInternal)
	})
}

func TestClubService_Create(t *testing.T) {
	t.Parallel()

	t.Run("blank name rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewClubService(noopClubRepo())

		_, err := svc.Create(context.Background(), "alice@example.com", CreateClubInput{Name: "   "})
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("creator always becomes a member", func(t *testing.T) {
		t.Parallel()
		var stored *models.Club
		repo := noopClubRepo()
		repo.createFn = func(_ context.Context, club *models.Club) error {
			stored = club
			return nil
		}
		svc := NewClubService(repo)

		club, err := svc.Create(context.Background(), "alice@example.com", CreateClubInput{
			Name:    "Sci-Fi Lovers",
			Members: []string{"bob@example.com", "alice@example.com", "bob@example.com"},
		})
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, stored, club)
		assert.Equal(t, []string{"bob@example.com", "alice@example.com"}, club.Members)
		assert.Equal(t, "alice@example.com", club.CreatedBy)
		assert.NotEmpty(t, club.ID)
	})

	t.Run("empty current book stays unset", func(t *testing.T) {
		t.Parallel()
		svc := NewClubService(noopClubRepo())

		club, err := svc.Create(context.Background(), "alice@example.com", CreateClubInput{Name: "Mystery"})
		require.NoError(t, err)
		assert.Nil(t, club.CurrentBook)
	})

	t.Run("current book is set when provided", func(t *testing.T) {
		t.Parallel()
		svc := NewClubService(noopClubRepo())

		club, err := svc.Create(context.Background(), "alice@example.com", CreateClubInput{
			Name:        "Sci-Fi Lovers",
			CurrentBook: "Dune",
		})
		require.NoError(t, err)
		require.NotNil(t, club.CurrentBook)
		assert.Equal(t, "Dune", *club.CurrentBook)
	})
}

func TestClubService_Join(t *testing.T) {
	t.Parallel()

	t.Run("missing club is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewClubService(noopClubRepo())

		_, err := svc.Join(context.Background(), "bob@example.com", "nope")
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("existing member is a no-op", func(t *testing.T) {
		t.Parallel()
		repo := noopClubRepo()
		repo.getByIDFn = func(context.Context, string) (*models.Club, error) {
			return &models.Club{ID: "c1", Members: []string{"bob@example.com"}}, nil
		}
		repo.addMemberFn = func(context.Context, string, string) error {
			t.Fatal("AddMember must not be called for an existing member")
			return nil
		}
		svc := NewClubService(repo)

		res, err := svc.Join(context.Background(), "bob@example.com", "c1")
		require.NoError(t, err)
		assert.Equal(t, "Already a member", res.Message)
		assert.Empty(t, res.ClubID)
	})

	t.Run("new member joins", func(t *testing.T) {
		t.Parallel()
		var addedClub, addedEmail string
		repo := noopClubRepo()
		repo.getByIDFn = func(context.Context, string) (*models.Club, error) {
			return &models.Club{ID: "c1", Members: []string{"alice@example.com"}}, nil
		}
		repo.addMemberFn = func(_ context.Context, clubID, email string) error {
			addedClub, addedEmail = clubID, email
			return nil
		}
		svc := NewClubService(repo)

		res, err := svc.Join(context.Background(), "bob@example.com", "c1")
		require.NoError(t, err)
		assert.Equal(t, "Joined club!", res.Message)
		assert.Equal(t, "c1", res.ClubID)
		assert.Equal(t, "c1", addedClub)
		assert.Equal(t, "bob@example.com", addedEmail)
	})
}

func TestClubService_Leave(t *testing.T) {
	t.Parallel()

	t.Run("non-member is a no-op", func(t *testing.T) {
		t.Parallel()
		repo := noopClubRepo()
		repo.getByIDFn = func(context.Context, string) (*models.Club, error) {
			return &models.Club{ID: "c1", Members: []string{"alice@example.com"}}, nil
		}
		repo.setMembersFn = func(context.Context, string, []string) error {
			t.Fatal("SetMembers must not be called for a non-member")
			return nil
		}
		svc := NewClubService(repo)

		res, err := svc.Leave(context.Background(), "bob@example.com", "c1")
		require.NoError(t, err)
		assert.Equal(t, "You are not a member of this club", res.Message)
	})

	t.Run("member leaves and only they are removed", func(t *testing.T) {
		t.Parallel()
		var written []string
		repo := noopClubRepo()
		repo.getByIDFn = func(context.Context, string) (*models.Club, error) {
			return &models.Club{ID: "c1", Members: []string{"alice@example.com", "bob@example.com"}}, nil
		}
		repo.setMembersFn = func(_ context.Context, _ string, members []string) error {
			written = members
			return nil
		}
		svc := NewClubService(repo)

		res, err := svc.Leave(context.Background(), "bob@example.com", "c1")
		require.NoError(t, err)
		assert.Equal(t, "Left the club", res.Message)
		assert.Equal(t, []string{"alice@example.com"}, written)
	})
}

func TestClubService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("only the creator may delete", func(t *testing.T) {
		t.Parallel()
		repo := noopClubRepo()
		repo.getByIDFn = func(context.Context, string) (*models.Club, error) {
			return &models.Club{ID: "c1", CreatedBy: "alice@example.com"}, nil
		}
		svc := NewClubService(repo)

		_, err := svc.Delete(context.Background(), "bob@example.com", "c1")
		assertAppErrorCode(t, err, models.CodeForbidden)
	})

	t.Run("creator deletes", func(t *testing.T) {
		t.Parallel()
		deleted := false
		repo := noopClubRepo()
		repo.getByIDFn = func(context.Context, string) (*models.Club, error) {
			return &models.Club{ID: "c1", CreatedBy: "alice@example.com"}, nil
		}
		repo.deleteFn = func(context.Context, string) error {
			deleted = true
			return nil
		}
		svc := NewClubService(repo)

		res, err := svc.Delete(context.Background(), "alice@example.com", "c1")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, "Club deleted!", res.Message)
		assert.Equal(t, "c1", res.DeletedClubID)
	})
}

func TestClubService_CurrentBook(t *testing.T) {
	t.Parallel()

	existing := func(repo *clubRepoStub) {
		repo.getByIDFn = func(context.Context, string) (*models.Club, error) {
			return &models.Club{ID: "c1"}, nil
		}
	}

	t.Run("missing club checked before blank book", func(t *testing.T) {
		t.Parallel()
		svc := NewClubService(noopClubRepo())

		_, err := svc.SetCurrentBook(context.Background(), "nope", "")
		assertAppErrorCode(t, err, models.CodeNotFound)
	})

	t.Run("blank book rejected", func(t *testing.T) {
		t.Parallel()
		repo := noopClubRepo()
		existing(repo)
		svc := NewClubService(repo)

		_, err := svc.SetCurrentBook(context.Background(), "c1", "  ")
		assertAppErrorCode(t, err, models.CodeValidation)
	})

	t.Run("set updates the book", func(t *testing.T) {
		t.Parallel()
		var written string
		repo := noopClubRepo()
		existing(repo)
		repo.setCurrentBookFn = func(_ context.Context, _ string, book string) error {
			written = book
			return nil
		}
		svc := NewClubService(repo)

		res, err := svc.SetCurrentBook(context.Background(), "c1", "Dune")
		require.NoError(t, err)
		assert.Equal(t, "Dune", written)
		assert.Equal(t, "Current book updated!", res.Message)
		assert.Equal(t, "Dune", res.CurrentBook)
	})

	t.Run("clear removes the book", func(t *testing.T) {
		t.Parallel()
		cleared := false
		repo := noopClubRepo()
		existing(repo)
		repo.clearCurrentBookFn = func(context.Context, string) error {
			cleared = true
			return nil
		}
		svc := NewClubService(repo)

		res, err := svc.ClearCurrentBook(context.Background(), "c1")
		require.NoError(t, err)
		assert.True(t, cleared)
		assert.Equal(t, "Current book removed from club", res.Message)
	})
}
