package server

import (
	"errors"
	"log/slog"

	"notecards/internal/database/repositories"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/health", s.healthHandler)
	s.App.Post("/register", s.registerUser)
	s.App.Post("/login", s.login)

	api := s.App.Group("/api")

	api.Post("/notes", s.createNote)
	api.Get("/notes", s.getAllNotes)
	api.Get("/notes/:id", s.getSingleNote)
	api.Put("/notes/:id", s.updateNote)
	api.Delete("/notes/:id", s.deleteNote)

	api.Post("/folders", s.createFolder)
	api.Get("/folders", s.getAllFolders)
	api.Get("/folders/:id", s.getSingleFolder)
	api.Put("/folders/:id", s.updateFolder)
	api.Delete("/folders/:id", s.deleteFolder)

	users := api.Group("/users", jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(s.jwtSecret)},
	}))
	users.Get("/", s.getAllUsers)
	users.Get("/:id", s.getUser)
	users.Put("/:id", s.updateUser)
	users.Put("/:id/password", s.resetPassword)
	users.Delete("/:id", s.deleteUser)

	if s.staticDir != "" {
		s.App.Static("/", s.staticDir)
	}
}

func (s *FiberServer) healthHandler(c *fiber.Ctx) error {
	stats := s.db.Health()
	if stats["status"] != "up" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(stats)
	}
	return c.JSON(stats)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// repoError maps repository failures onto HTTP errors. Anything that is not a
// missing row or a unique conflict is logged and hidden behind a 500.
func repoError(err error, action string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "not found")
	}
	if errors.Is(err, repositories.ErrConflict) {
		return fiber.NewError(fiber.StatusConflict, "already exists")
	}
	slog.Error(action, "error", err)
	return fiber.NewError(fiber.StatusInternalServerError, action)
}
