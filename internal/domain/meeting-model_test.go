package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeetingValidateType(t *testing.T) {
	m := Meeting{BuyerID: 1, SellerID: 2, Type: "remote"}
	assert.Empty(t, m.Validate())

	m.Type = "face-to-face"
	assert.Empty(t, m.Validate())

	m.Type = "phone"
	assert.Contains(t, m.Validate()["type"], "Type must be one of the following:")
}

func TestMeetingValidateSelfDealing(t *testing.T) {
	m := Meeting{BuyerID: 4, SellerID: 4, Type: "remote"}
	assert.Equal(t, "Buyer and seller cannot be the same user", m.Validate()["buyerId"])
}

func TestMeetingValidateNewRequiresFutureDate(t *testing.T) {
	now := time.Now()

	m := Meeting{BuyerID: 1, SellerID: 2, Type: "remote", Date: now.Add(-time.Hour)}
	assert.Equal(t, "Date cannot be earlier than present", m.ValidateNew(now)["date"])

	m.Date = now.Add(time.Hour)
	assert.Empty(t, m.ValidateNew(now))

	// Validate alone never re-checks the date, so editing an old meeting
	// stays possible.
	m.Date = now.Add(-time.Hour)
	assert.Empty(t, m.Validate())
}
