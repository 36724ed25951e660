package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookclub/internal/config"
	"bookclub/internal/gateway"
	"bookclub/internal/identity"
	"bookclub/internal/models"
	"bookclub/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type searcherFunc func(ctx context.Context, query string, limit, offset int) ([]models.Book, error)

func (f searcherFunc) Search(ctx context.Context, query string, limit, offset int) ([]models.Book, error) {
	return f(ctx, query, limit, offset)
}

var noBooks gateway.BookSearcher = searcherFunc(
	func(context.Context, string, int, int) ([]models.Book, error) {
		return nil, nil
	})

// setupTestApp builds the full HTTP surface against in-memory backends.
func setupTestApp(t *testing.T, searcher gateway.BookSearcher) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		Env:          "development",
		StoreBackend: "memory",
	}
	store := repository.NewMemoryStore()
	srv := NewServerWithDeps(cfg,
		store.Clubs(), store.Threads(), store.Comments(),
		identity.NewMemoryProvider(), searcher)

	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app
}

// envelope mirrors the wire shape of every JSON response.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, out))
}

// loginAs signs up (ignoring duplicates) and logs in, returning a bearer token.
func loginAs(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	creds := models.SignupRequest{Email: email, Password: "hunter2"}
	_, _ = doJSON(t, app, http.MethodPost, "/signup", "", creds)

	status, env := doJSON(t, app, http.MethodPost, "/login", "", creds)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, env, &data)
	require.NotEmpty(t, data.Token)
	return data.Token
}

func createClub(t *testing.T, app *fiber.App, bearer string, req models.CreateClubRequest) models.Club {
	t.Helper()

	status, env := doJSON(t, app, http.MethodPost, "/clubs", bearer, req)
	require.Equal(t, http.StatusOK, status)
	require.True(t, env.Success)

	var club models.Club
	decodeData(t, env, &club)
	return club
}
