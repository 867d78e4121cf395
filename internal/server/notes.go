package server

import (
	"strings"

	"notecards/internal/database/dto"
	"notecards/internal/database/models"

	"github.com/gofiber/fiber/v2"
)

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	var input dto.NoteInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Title) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "title is required")
	}

	note := models.Note{
		Title:    input.Title,
		Body:     input.Body,
		FolderID: input.FolderID,
	}
	if err := s.repos.Notes.Create(c.Context(), &note); err != nil {
		return repoError(err, "error creating note")
	}
	return c.Status(fiber.StatusCreated).JSON(note)
}

// getAllNotes lists every note, or runs a full-text search when q is given.
func (s *FiberServer) getAllNotes(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		notes, err := s.repos.Search.SearchNotes(c.Context(), q)
		if err != nil {
			return repoError(err, "error searching notes")
		}
		return c.JSON(notes)
	}
	notes, err := s.repos.Notes.GetAll(c.Context())
	if err != nil {
		return repoError(err, "error listing notes")
	}
	return c.JSON(notes)
}

func (s *FiberServer) getSingleNote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	note, err := s.repos.Notes.GetByID(c.Context(), id)
	if err != nil {
		return repoError(err, "error getting note")
	}
	return c.JSON(note)
}

func (s *FiberServer) updateNote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var input dto.NoteInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	note := models.Note{
		ID:       id,
		Title:    input.Title,
		Body:     input.Body,
		FolderID: input.FolderID,
	}
	if err := s.repos.Notes.Update(c.Context(), &note); err != nil {
		return repoError(err, "error updating note")
	}
	return c.JSON(note)
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.repos.Notes.Delete(c.Context(), id); err != nil {
		return repoError(err, "error deleting note")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
