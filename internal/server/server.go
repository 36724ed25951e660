// Package server wires the HTTP surface: Fiber app setup, route table, and
// the handlers that translate between requests and the service layer.
package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bookclub/internal/config"
	"bookclub/internal/gateway"
	"bookclub/internal/identity"
	"bookclub/internal/middleware"
	"bookclub/internal/models"
	"bookclub/internal/repository"
	"bookclub/internal/service"
	"bookclub/internal/token"

	"cloud.google.com/go/firestore"
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"google.golang.org/api/option"
)

// The Fiber prometheus middleware registers its collectors on the default
// registry, so it is created once per process however many servers exist.
var (
	promOnce sync.Once
	promMW   *fiberprometheus.FiberPrometheus
)

func metricsMiddleware() *fiberprometheus.FiberPrometheus {
	promOnce.Do(func() {
		promMW = fiberprometheus.New("bookclub-api")
	})
	return promMW
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	tokens         *token.Service
	promMiddleware *fiberprometheus.FiberPrometheus
	firestoreC     *firestore.Client

	clubRepo    repository.ClubRepository
	threadRepo  repository.ThreadRepository
	commentRepo repository.CommentRepository

	authService   *service.AuthService
	clubService   *service.ClubService
	threadService *service.ThreadService
	bookService   *service.BookService
}

// NewServer creates a server instance, connecting the store backend named by
// the configuration. STORE_BACKEND=memory serves everything from process
// memory; anything else connects Firestore and Firebase Auth.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	timeout := time.Duration(cfg.StoreTimeoutSec) * time.Second

	var (
		clubRepo    repository.ClubRepository
		threadRepo  repository.ThreadRepository
		commentRepo repository.CommentRepository
		provider    identity.Provider
		fsClient    *firestore.Client
	)

	if cfg.StoreBackend == "memory" {
		store := repository.NewMemoryStore()
		clubRepo = store.Clubs()
		threadRepo = store.Threads()
		commentRepo = store.Comments()
		provider = identity.NewMemoryProvider()
	} else {
		var opts []option.ClientOption
		if cfg.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
		}
		client, err := firestore.NewClient(ctx, cfg.FirestoreProject, opts...)
		if err != nil {
			return nil, fmt.Errorf("firestore connection failed: %w", err)
		}
		fsClient = client
		clubRepo = repository.NewFirestoreClubRepository(client, timeout)
		threadRepo = repository.NewFirestoreThreadRepository(client, timeout)
		commentRepo = repository.NewFirestoreCommentRepository(client, timeout)

		fbProvider, err := identity.NewFirebaseProvider(ctx, cfg.CredentialsFile, timeout)
		if err != nil {
			return nil, fmt.Errorf("firebase auth init failed: %w", err)
		}
		provider = fbProvider
	}

	searcher := gateway.NewBooksClient(cfg.BooksBaseURL, cfg.BooksAPIKey, timeout)

	server := newServerWith(cfg, clubRepo, threadRepo, commentRepo, provider, searcher)
	server.firestoreC = fsClient
	return server, nil
}

// NewServerWithDeps creates a Server from already-initialized dependencies.
// Tests use this to run the full HTTP surface against in-memory backends.
func NewServerWithDeps(
	cfg *config.Config,
	clubs repository.ClubRepository,
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	provider identity.Provider,
	searcher gateway.BookSearcher,
) *Server {
	return newServerWith(cfg, clubs, threads, comments, provider, searcher)
}

func newServerWith(
	cfg *config.Config,
	clubs repository.ClubRepository,
	threads repository.ThreadRepository,
	comments repository.CommentRepository,
	provider identity.Provider,
	searcher gateway.BookSearcher,
) *Server {
	tokens := token.NewService(cfg.JWTSecret)

	server := &Server{
		config:         cfg,
		tokens:         tokens,
		promMiddleware: metricsMiddleware(),
		clubRepo:       clubs,
		threadRepo:     threads,
		commentRepo:    comments,
	}
	server.authService = service.NewAuthService(provider, tokens)
	server.clubService = service.NewClubService(clubs)
	server.threadService = service.NewThreadService(clubs, threads, comments)
	server.bookService = service.NewBookService(searcher)

	return server
}

// Close releases backend connections.
func (s *Server) Close() error {
	if s.firestoreC != nil {
		return s.firestoreC.Close()
	}
	return nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// Context middleware to propagate request ID and principal
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Liveness and the token smoke-check route
	app.Get("/", s.LivenessCheck)
	app.Get("/protected", middleware.AuthRequired(s.tokens), s.Protected)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	app.Post("/signup", s.Signup)
	app.Post("/login", s.Login)

	// Book catalog
	app.Get("/books/search", s.SearchBooks)

	// Public browse routes. These must be registered before the protected
	// group below: the group's auth middleware matches every /clubs path.
	app.Get("/clubs", s.GetClubs)
	app.Get("/clubs/:clubId/threads", s.GetThreads)
	app.Get("/clubs/:clubId/threads/:threadId", s.GetThread)

	// Current-book routes sit outside the authenticated block; the principal
	// is extracted when present but never required. See DESIGN.md.
	currentBook := app.Group("/clubs/:id/currentBook", middleware.AuthOptional(s.tokens))
	currentBook.Patch("/", s.SetCurrentBook)
	currentBook.Delete("/", s.ClearCurrentBook)

	// Protected club routes
	clubs := app.Group("/clubs", middleware.AuthRequired(s.tokens))
	clubs.Post("/", s.CreateClub)
	clubs.Post("/:id/join", s.JoinClub)
	clubs.Delete("/:id/leave", s.LeaveClub)
	clubs.Delete("/:id", s.DeleteClub)

	threads := clubs.Group("/:clubId/threads")
	threads.Post("/", s.CreateThread)
	threads.Delete("/:threadId", s.DeleteThread)
	threads.Post("/:threadId/comments", s.AddComment)
	threads.Delete("/:threadId/comments/:commentId", s.DeleteComment)
}

// LivenessCheck handles GET /
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.SendString("Book Club API is running!")
}

// Protected handles GET /protected
func (s *Server) Protected(c *fiber.Ctx) error {
	email := middleware.Email(c)
	return c.SendString(fmt.Sprintf("🔐 Welcome, %s! This is a protected route.", email))
}

// respondError maps a service error to its status and writes the envelope.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
