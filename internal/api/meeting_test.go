package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func futureDate() string {
	return time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
}

func (e *testEnv) createMeeting(t *testing.T, token string, propertyID uint) uint {
	resp := e.request(t, "POST", fmt.Sprintf("/properties/%d/meetings", propertyID), token, map[string]interface{}{
		"type": "remote",
		"date": futureDate(),
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return uint(decodeJSON(t, resp)["id"].(float64))
}

func TestCreateMeetingBooksBuyerAndSeller(t *testing.T) {
	env := newTestEnv(t)
	sellerID := env.registerUser(t, "seller@example.com")
	buyerID := env.registerUser(t, "buyer@example.com")
	sellerToken := env.login(t, "seller@example.com", "password1")
	buyerToken := env.login(t, "buyer@example.com", "password1")

	propertyID := env.createProperty(t, sellerToken)
	meetingID := env.createMeeting(t, buyerToken, propertyID)

	resp := env.request(t, "GET", fmt.Sprintf("/meetings/%d", meetingID), buyerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	meeting := decodeJSON(t, resp)["meeting"].(map[string]interface{})
	assert.Equal(t, float64(buyerID), meeting["buyerId"])
	assert.Equal(t, float64(sellerID), meeting["sellerId"])
	assert.Equal(t, "remote", meeting["type"])
}

func TestCreateMeetingOnOwnPropertyRejected(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "owner@example.com")
	token := env.login(t, "owner@example.com", "password1")
	propertyID := env.createProperty(t, token)

	resp := env.request(t, "POST", fmt.Sprintf("/properties/%d/meetings", propertyID), token, map[string]interface{}{
		"type": "remote",
		"date": futureDate(),
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Cannot create meeting for your own property", decodeJSON(t, resp)["error"])
}

func TestCreateMeetingValidation(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "seller@example.com")
	env.registerUser(t, "buyer@example.com")
	sellerToken := env.login(t, "seller@example.com", "password1")
	buyerToken := env.login(t, "buyer@example.com", "password1")
	propertyID := env.createProperty(t, sellerToken)
	path := fmt.Sprintf("/properties/%d/meetings", propertyID)

	resp := env.request(t, "POST", path, buyerToken, map[string]interface{}{
		"type": "phone",
		"date": "tomorrow",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Equal(t, "Could not create meeting", body["error"])
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, "Date must be a valid ISO 8601 datetime", errs["date"])
	assert.Contains(t, errs["type"], "Type must be one of the following:")

	past := time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	resp = env.request(t, "POST", path, buyerToken, map[string]interface{}{
		"type": "remote",
		"date": past,
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	errs = decodeJSON(t, resp)["errors"].(map[string]interface{})
	assert.Equal(t, "Date cannot be earlier than present", errs["date"])
}

func TestMeetingVisibleToBuyerAndSellerOnly(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "seller@example.com")
	env.registerUser(t, "buyer@example.com")
	env.registerUser(t, "stranger@example.com")
	sellerToken := env.login(t, "seller@example.com", "password1")
	buyerToken := env.login(t, "buyer@example.com", "password1")
	strangerToken := env.login(t, "stranger@example.com", "password1")

	propertyID := env.createProperty(t, sellerToken)
	meetingID := env.createMeeting(t, buyerToken, propertyID)
	path := fmt.Sprintf("/meetings/%d", meetingID)

	resp := env.request(t, "GET", path, sellerToken, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = env.request(t, "GET", path, strangerToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", readBody(t, resp))
}

func TestListPropertyMeetingsOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "seller@example.com")
	env.registerUser(t, "buyer@example.com")
	sellerToken := env.login(t, "seller@example.com", "password1")
	buyerToken := env.login(t, "buyer@example.com", "password1")

	propertyID := env.createProperty(t, sellerToken)
	env.createMeeting(t, buyerToken, propertyID)
	path := fmt.Sprintf("/properties/%d/meetings", propertyID)

	resp := env.request(t, "GET", path, sellerToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	meetings := decodeJSON(t, resp)["meetings"].([]interface{})
	assert.Len(t, meetings, 1)

	// the buyer booked it but does not own the listing
	resp = env.request(t, "GET", path, buyerToken, nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestListUserMeetingsSplitsSides(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "alice@example.com")
	env.registerUser(t, "bob@example.com")
	aliceToken := env.login(t, "alice@example.com", "password1")
	bobToken := env.login(t, "bob@example.com", "password1")

	aliceProperty := env.createProperty(t, aliceToken)
	bobProperty := env.createProperty(t, bobToken)

	// alice books on bob's listing and bob books on alice's
	env.createMeeting(t, aliceToken, bobProperty)
	env.createMeeting(t, bobToken, aliceProperty)

	resp := env.request(t, "GET", "/users/me/meetings", aliceToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeJSON(t, resp)
	assert.Len(t, body["buyerMeetings"].([]interface{}), 1)
	assert.Len(t, body["sellerMeetings"].([]interface{}), 1)
}

func TestUpdateMeetingAllowsPastDate(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "seller@example.com")
	env.registerUser(t, "buyer@example.com")
	sellerToken := env.login(t, "seller@example.com", "password1")
	buyerToken := env.login(t, "buyer@example.com", "password1")

	propertyID := env.createProperty(t, sellerToken)
	meetingID := env.createMeeting(t, buyerToken, propertyID)
	path := fmt.Sprintf("/meetings/%d", meetingID)

	// rescheduling to the past is allowed once the meeting exists
	past := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
	resp := env.request(t, "PATCH", path, sellerToken, map[string]interface{}{"date": past})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = env.request(t, "PATCH", path, buyerToken, map[string]interface{}{"type": "face-to-face"})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = env.request(t, "PATCH", path, buyerToken, map[string]interface{}{"type": "carrier-pigeon"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Could not modify meeting", decodeJSON(t, resp)["error"])
}

func TestDeleteMeeting(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "seller@example.com")
	env.registerUser(t, "buyer@example.com")
	sellerToken := env.login(t, "seller@example.com", "password1")
	buyerToken := env.login(t, "buyer@example.com", "password1")

	propertyID := env.createProperty(t, sellerToken)
	meetingID := env.createMeeting(t, buyerToken, propertyID)
	path := fmt.Sprintf("/meetings/%d", meetingID)

	resp := env.request(t, "DELETE", path, buyerToken, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = env.request(t, "GET", path, buyerToken, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, fmt.Sprintf("Meeting '%d' not found", meetingID), decodeJSON(t, resp)["error"])
}
