package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"notecards/internal/config"
	"notecards/internal/database"
	"notecards/internal/database/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 5 * time.Second

// Repositories groups the persistence the handlers depend on.
type Repositories struct {
	Notes   repositories.NoteRepository
	Folders repositories.FolderRepository
	Users   repositories.UserRepository
	Search  repositories.SearchRepository
}

func NewRepositories(db database.Service) Repositories {
	return Repositories{
		Notes:   repositories.NewNoteRepository(db.DB()),
		Folders: repositories.NewFolderRepository(db.DB()),
		Users:   repositories.NewUserRepository(db.DB()),
		Search:  repositories.NewSearchRepository(db.DB()),
	}
}

type FiberServer struct {
	*fiber.App

	db        database.Service
	repos     Repositories
	jwtSecret string
	staticDir string
}

func New(cfg config.Config, db database.Service) *FiberServer {
	return NewWithRepositories(cfg, db, NewRepositories(db))
}

func NewWithRepositories(cfg config.Config, db database.Service, repos Repositories) *FiberServer {
	server := &FiberServer{
		App: fiber.New(fiber.Config{
			ServerHeader: "notecards",
			AppName:      "notecards",
			ErrorHandler: errorHandler,
		}),
		db:        db,
		repos:     repos,
		jwtSecret: cfg.JWTSecret,
		staticDir: cfg.StaticDir,
	}
	server.App.Use(recover.New())
	server.App.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		MaxAge:       3600,
	}))
	server.App.Use(logger.New())
	return server
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *FiberServer) Serve(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

// Run connects to the database and serves the API until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	db, err := database.New(cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	srv := New(cfg, db)
	srv.RegisterFiberRoutes()

	slog.Info("server starting", "port", cfg.Port)
	return srv.Serve(ctx, fmt.Sprintf(":%d", cfg.Port))
}
