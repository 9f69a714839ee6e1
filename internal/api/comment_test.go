package api

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) createComment(t *testing.T, token string, propertyID uint, body string) uint {
	resp := e.request(t, "POST", fmt.Sprintf("/properties/%d/comments", propertyID), token, map[string]interface{}{
		"body": body,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return uint(decodeJSON(t, resp)["id"].(float64))
}

func TestCommentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "owner@example.com")
	env.registerUser(t, "visitor@example.com")
	ownerToken := env.login(t, "owner@example.com", "password1")
	visitorToken := env.login(t, "visitor@example.com", "password1")

	propertyID := env.createProperty(t, ownerToken)
	commentID := env.createComment(t, visitorToken, propertyID, "Is the price negotiable?")

	// listing and reading comments needs no auth
	resp := env.request(t, "GET", fmt.Sprintf("/properties/%d/comments", propertyID), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	comments := decodeJSON(t, resp)["comments"].([]interface{})
	require.Len(t, comments, 1)

	path := fmt.Sprintf("/properties/%d/comments/%d", propertyID, commentID)
	resp = env.request(t, "GET", path, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	comment := decodeJSON(t, resp)["comment"].(map[string]interface{})
	assert.Equal(t, "Is the price negotiable?", comment["body"])

	resp = env.request(t, "PATCH", path, visitorToken, map[string]interface{}{"body": "Edited question"})
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = env.request(t, "DELETE", path, visitorToken, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = env.request(t, "GET", path, "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCommentAuthorOnlyMutations(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "owner@example.com")
	env.registerUser(t, "author@example.com")
	ownerToken := env.login(t, "owner@example.com", "password1")
	authorToken := env.login(t, "author@example.com", "password1")

	propertyID := env.createProperty(t, ownerToken)
	commentID := env.createComment(t, authorToken, propertyID, "Nice place")
	path := fmt.Sprintf("/properties/%d/comments/%d", propertyID, commentID)

	// owning the property grants nothing over other people's comments
	resp := env.request(t, "PATCH", path, ownerToken, map[string]interface{}{"body": "Censored"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", readBody(t, resp))

	resp = env.request(t, "DELETE", path, ownerToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, "DELETE", path, authorToken, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCommentPropertyMismatchReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "owner@example.com")
	token := env.login(t, "owner@example.com", "password1")

	firstProperty := env.createProperty(t, token)
	secondProperty := env.createProperty(t, token)
	commentID := env.createComment(t, token, firstProperty, "On the first listing")

	resp := env.request(t, "GET", fmt.Sprintf("/properties/%d/comments/%d", secondProperty, commentID), "", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Comment '%d' not found", commentID), decodeJSON(t, resp)["error"])
}

func TestCommentValidation(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "owner@example.com")
	token := env.login(t, "owner@example.com", "password1")
	propertyID := env.createProperty(t, token)
	path := fmt.Sprintf("/properties/%d/comments", propertyID)

	resp := env.request(t, "POST", path, token, map[string]interface{}{})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	errs := decodeJSON(t, resp)["errors"].(map[string]interface{})
	assert.Equal(t, "'body' is required", errs["body"])

	resp = env.request(t, "POST", path, token, map[string]interface{}{"body": "   "})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "Could not create comment", body["error"])
	errs = body["errors"].(map[string]interface{})
	assert.Equal(t, "Comment body cannot be empty", errs["body"])

	resp = env.request(t, "POST", path, token, map[string]interface{}{"body": strings.Repeat("x", 501)})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errs = decodeJSON(t, resp)["errors"].(map[string]interface{})
	assert.Equal(t, "Comment cannot be longer than 500 characters", errs["body"])
}

func TestCommentOnMissingProperty(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "someone@example.com")
	token := env.login(t, "someone@example.com", "password1")

	resp := env.request(t, "POST", "/properties/42/comments", token, map[string]interface{}{"body": "Hello"})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Property listing '42' not found", decodeJSON(t, resp)["error"])
}
