package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studykit/flashcard-backend/models"
)

func TestUsers_AdminGate(t *testing.T) {
	r := setupRouter(t)
	user := seedUser(t, "alice", "alice@example.com", "secret123", models.RoleUser)
	admin := seedUser(t, "root", "root@example.com", "secret123", models.RoleAdmin)

	noToken := doJSON(r, http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, noToken.Code)

	asUser := doJSON(r, http.MethodGet, "/users", tokenFor(t, user), nil)
	assert.Equal(t, http.StatusForbidden, asUser.Code)

	asAdmin := doJSON(r, http.MethodGet, "/users", tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, asAdmin.Code)

	var users []models.User
	decodeBody(t, asAdmin, &users)
	assert.Len(t, users, 2)
}

func TestGetUserByID_NotFound(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, "root", "root@example.com", "secret123", models.RoleAdmin)

	w := doJSON(r, http.MethodGet, "/users/7b0d8c7e-5cbb-41a6-90ac-1f1c1d14f3aa", tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUser_PartialUpdate(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, "root", "root@example.com", "secret123", models.RoleAdmin)
	user := seedUser(t, "alice", "alice@example.com", "secret123", models.RoleUser)

	w := doJSON(r, http.MethodPut, "/users/"+user.ID.String(), tokenFor(t, admin), map[string]string{
		"username": "alice-renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.User
	decodeBody(t, w, &updated)
	assert.Equal(t, "alice-renamed", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestDeleteUser(t *testing.T) {
	r := setupRouter(t)
	admin := seedUser(t, "root", "root@example.com", "secret123", models.RoleAdmin)
	user := seedUser(t, "alice", "alice@example.com", "secret123", models.RoleUser)

	w := doJSON(r, http.MethodDelete, "/users/"+user.ID.String(), tokenFor(t, admin), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "deleted successfully")

	gone := doJSON(r, http.MethodGet, "/users/"+user.ID.String(), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}
