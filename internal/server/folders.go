package server

import (
	"strings"

	"notecards/internal/database/dto"
	"notecards/internal/database/models"

	"github.com/gofiber/fiber/v2"
)

func (s *FiberServer) createFolder(c *fiber.Ctx) error {
	var input dto.FolderInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.Name) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	folder := models.Folder{
		Name:           input.Name,
		Description:    input.Description,
		ParentFolderID: input.ParentFolderID,
		UserID:         input.UserID,
	}
	if err := s.repos.Folders.Create(c.Context(), &folder); err != nil {
		return repoError(err, "error creating folder")
	}
	return c.Status(fiber.StatusCreated).JSON(folder)
}

func (s *FiberServer) getAllFolders(c *fiber.Ctx) error {
	folders, err := s.repos.Folders.GetAll(c.Context())
	if err != nil {
		return repoError(err, "error listing folders")
	}
	return c.JSON(folders)
}

func (s *FiberServer) getSingleFolder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	folder, err := s.repos.Folders.GetByID(c.Context(), id)
	if err != nil {
		return repoError(err, "error getting folder")
	}
	return c.JSON(folder)
}

func (s *FiberServer) updateFolder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var input dto.FolderInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if input.ParentFolderID != nil && *input.ParentFolderID == id {
		return fiber.NewError(fiber.StatusBadRequest, "folder cannot be its own parent")
	}

	folder := models.Folder{
		ID:             id,
		Name:           input.Name,
		Description:    input.Description,
		ParentFolderID: input.ParentFolderID,
		UserID:         input.UserID,
	}
	if err := s.repos.Folders.Update(c.Context(), &folder); err != nil {
		return repoError(err, "error updating folder")
	}
	return c.JSON(folder)
}

func (s *FiberServer) deleteFolder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := s.repos.Folders.Delete(c.Context(), id); err != nil {
		return repoError(err, "error deleting folder")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
