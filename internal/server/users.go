package server

import (
	"errors"
	"strings"

	"notecards/internal/database/dto"
	"notecards/internal/database/models"
	"notecards/internal/database/repositories"
	"notecards/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func (s *FiberServer) registerUser(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username, email and password are required")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return err
	}
	user := models.User{
		Username: strings.TrimSpace(input.Username),
		Email:    strings.TrimSpace(input.Email),
		Password: hash,
	}
	if err := s.repos.Users.Create(c.Context(), &user); err != nil {
		return repoError(err, "error creating user")
	}
	return c.Status(fiber.StatusCreated).JSON(user.Public())
}

func (s *FiberServer) login(c *fiber.Ctx) error {
	var credentials dto.LoginCredentials
	if err := c.BodyParser(&credentials); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if credentials.Username == "" || credentials.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and password are required")
	}

	user, err := s.repos.Users.GetByUsername(c.Context(), credentials.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
		}
		return repoError(err, "error getting user")
	}
	if !utils.CheckPasswordHash(credentials.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := utils.CreateToken(user.ID, user.Username, s.jwtSecret)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "token creation failed")
	}
	return c.JSON(fiber.Map{"token": token, "user": user.Public()})
}

// ownUserID resolves :id and makes sure the bearer token was issued for it.
func ownUserID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := parseID(c)
	if err != nil {
		return uuid.Nil, err
	}
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	subject, err := utils.SubjectFromToken(token)
	if err != nil {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	if subject != id {
		return uuid.Nil, fiber.ErrForbidden
	}
	return id, nil
}

func (s *FiberServer) getAllUsers(c *fiber.Ctx) error {
	users, err := s.repos.Users.GetAll(c.Context())
	if err != nil {
		return repoError(err, "error listing users")
	}
	for i := range users {
		users[i] = users[i].Public()
	}
	return c.JSON(users)
}

func (s *FiberServer) getUser(c *fiber.Ctx) error {
	id, err := ownUserID(c)
	if err != nil {
		return err
	}
	user, err := s.repos.Users.GetByID(c.Context(), id)
	if err != nil {
		return repoError(err, "error getting user")
	}
	return c.JSON(user.Public())
}

func (s *FiberServer) updateUser(c *fiber.Ctx) error {
	id, err := ownUserID(c)
	if err != nil {
		return err
	}
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if input.Username == "" || input.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username and email are required")
	}

	user := models.User{ID: id, Username: input.Username, Email: input.Email}
	if err := s.repos.Users.Update(c.Context(), &user); err != nil {
		return repoError(err, "error updating user")
	}
	return c.JSON(user.Public())
}

func (s *FiberServer) resetPassword(c *fiber.Ctx) error {
	id, err := ownUserID(c)
	if err != nil {
		return err
	}
	var input dto.PasswordReset
	if err := c.BodyParser(&input); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if input.NewPassword == "" {
		return fiber.NewError(fiber.StatusBadRequest, "new password is required")
	}

	err = s.repos.Users.ResetPassword(c.Context(), id, input.OldPassword, input.NewPassword)
	if errors.Is(err, repositories.ErrIncorrectPassword) {
		return fiber.NewError(fiber.StatusUnauthorized, "incorrect password")
	}
	if err != nil {
		return repoError(err, "error resetting password")
	}
	return c.JSON(fiber.Map{"message": "password updated successfully"})
}

func (s *FiberServer) deleteUser(c *fiber.Ctx) error {
	id, err := ownUserID(c)
	if err != nil {
		return err
	}
	if err := s.repos.Users.Delete(c.Context(), id); err != nil {
		return repoError(err, "error deleting user")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
