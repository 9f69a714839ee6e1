package api

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportUser(t *testing.T) {
	env := newTestEnv(t)
	reportedID := env.registerUser(t, "troll@example.com")
	env.registerUser(t, "reporter@example.com")
	token := env.login(t, "reporter@example.com", "password1")

	resp := env.request(t, "POST", fmt.Sprintf("/users/%d/reports", reportedID), token, map[string]interface{}{
		"reason": "Posting spam listings",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.NotZero(t, decodeJSON(t, resp)["id"])
}

func TestReportUserTwiceRejected(t *testing.T) {
	env := newTestEnv(t)
	reportedID := env.registerUser(t, "troll@example.com")
	env.registerUser(t, "reporter@example.com")
	token := env.login(t, "reporter@example.com", "password1")
	path := fmt.Sprintf("/users/%d/reports", reportedID)

	resp := env.request(t, "POST", path, token, map[string]interface{}{"reason": "spam"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = env.request(t, "POST", path, token, map[string]interface{}{"reason": "spam again"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, fmt.Sprintf("Could not create report for user with id '%d'", reportedID), body["error"])
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "You have already reported this user", errs["reportedUserId"])
}

func TestReportUserNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "reporter@example.com")
	token := env.login(t, "reporter@example.com", "password1")

	resp := env.request(t, "POST", "/users/99/reports", token, map[string]interface{}{"reason": "spam"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "User '99' not found", decodeJSON(t, resp)["error"])
}

func TestReportUserRequiresReason(t *testing.T) {
	env := newTestEnv(t)
	reportedID := env.registerUser(t, "troll@example.com")
	env.registerUser(t, "reporter@example.com")
	token := env.login(t, "reporter@example.com", "password1")
	path := fmt.Sprintf("/users/%d/reports", reportedID)

	resp := env.request(t, "POST", path, token, map[string]interface{}{})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	errs := decodeJSON(t, resp)["errors"].(map[string]interface{})
	assert.Equal(t, "'reason' is required", errs["reason"])

	resp = env.request(t, "POST", path, token, map[string]interface{}{"reason": "  "})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errs = decodeJSON(t, resp)["errors"].(map[string]interface{})
	assert.Equal(t, "You need a reason for the report", errs["reason"])
}

func TestReportComment(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "owner@example.com")
	env.registerUser(t, "reporter@example.com")
	ownerToken := env.login(t, "owner@example.com", "password1")
	reporterToken := env.login(t, "reporter@example.com", "password1")

	propertyID := env.createProperty(t, ownerToken)
	commentID := env.createComment(t, ownerToken, propertyID, "Offensive remark")

	resp := env.request(t, "POST", fmt.Sprintf("/comments/%d/reports", commentID), reporterToken, map[string]interface{}{
		"reason": "Offensive language",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// unlike user reports, the same comment can be reported repeatedly
	resp = env.request(t, "POST", fmt.Sprintf("/comments/%d/reports", commentID), reporterToken, map[string]interface{}{
		"reason": "Still offensive",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestReportCommentNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "reporter@example.com")
	token := env.login(t, "reporter@example.com", "password1")

	resp := env.request(t, "POST", "/comments/123/reports", token, map[string]interface{}{"reason": "spam"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Comment '123' not found", decodeJSON(t, resp)["error"])
}
