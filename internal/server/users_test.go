package server

import (
	"testing"

	"notecards/internal/database/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func registerAndLogin(t *testing.T, s *testServer, username string) loginResponse {
	t.Helper()
	resp := s.do(t, "POST", "/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "s3cret",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	registered := decode[models.User](t, resp)
	assert.Empty(t, registered.Password)

	resp = s.do(t, "POST", "/login", map[string]string{"username": username, "password": "s3cret"}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	login := decode[loginResponse](t, resp)
	require.NotEmpty(t, login.Token)
	return login
}

func TestRegister_MissingFields(t *testing.T) {
	s := setupServer(t)
	resp := s.do(t, "POST", "/register", map[string]string{"username": "ana"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin_WrongPassword(t *testing.T) {
	s := setupServer(t)
	registerAndLogin(t, s, "ana")

	resp := s.do(t, "POST", "/login", map[string]string{"username": "ana", "password": "nope"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, "POST", "/login", map[string]string{"username": "nobody", "password": "nope"}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUsers_RequireToken(t *testing.T) {
	s := setupServer(t)
	login := registerAndLogin(t, s, "ana")

	resp := s.do(t, "GET", "/api/users/"+login.User.ID.String(), nil, "")
	assert.Contains(t, []int{fiber.StatusBadRequest, fiber.StatusUnauthorized}, resp.StatusCode)

	resp = s.do(t, "GET", "/api/users/"+login.User.ID.String(), nil, login.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	me := decode[models.User](t, resp)
	assert.Equal(t, "ana", me.Username)
	assert.Empty(t, me.Password)
}

func TestUsers_CannotTouchOthers(t *testing.T) {
	s := setupServer(t)
	ana := registerAndLogin(t, s, "ana")
	bob := registerAndLogin(t, s, "bob")

	resp := s.do(t, "DELETE", "/api/users/"+bob.User.ID.String(), nil, ana.Token)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestUsers_UpdateAndResetPassword(t *testing.T) {
	s := setupServer(t)
	ana := registerAndLogin(t, s, "ana")
	target := "/api/users/" + ana.User.ID.String()

	resp := s.do(t, "PUT", target, map[string]string{"username": "ana", "email": "ana@example.org"}, ana.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ana@example.org", decode[models.User](t, resp).Email)

	resp = s.do(t, "PUT", target+"/password", map[string]string{"old_password": "wrong", "new_password": "next"}, ana.Token)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = s.do(t, "PUT", target+"/password", map[string]string{"old_password": "s3cret", "new_password": "next"}, ana.Token)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, "POST", "/login", map[string]string{"username": "ana", "password": "next"}, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, "DELETE", target, nil, ana.Token)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestRegister_Duplicate(t *testing.T) {
	s := setupServer(t)
	registerAndLogin(t, s, "ana")

	resp := s.do(t, "POST", "/register", map[string]string{
		"username": "ana",
		"email":    "someone@example.com",
		"password": "other",
	}, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "already exists", decode[map[string]string](t, resp)["error"])
}

func TestUsers_List(t *testing.T) {
	s := setupServer(t)
	ana := registerAndLogin(t, s, "ana")
	registerAndLogin(t, s, "bob")

	resp := s.do(t, "GET", "/api/users", nil, "")
	assert.Contains(t, []int{fiber.StatusBadRequest, fiber.StatusUnauthorized}, resp.StatusCode)

	resp = s.do(t, "GET", "/api/users", nil, ana.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	users := decode[[]models.User](t, resp)
	require.Len(t, users, 2)
	assert.Equal(t, "ana", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}
