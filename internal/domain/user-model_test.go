package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserNormalizeLowercasesEmail(t *testing.T) {
	u := User{Email: "  Jane.Doe@Example.COM ", FirstName: " Jane ", LastName: " Doe "}
	u.Normalize()
	assert.Equal(t, "jane.doe@example.com", u.Email)
	assert.Equal(t, "Jane", u.FirstName)
	assert.Equal(t, "Doe", u.LastName)
}

func TestUserValidate(t *testing.T) {
	u := User{
		Email:        "jane@example.com",
		FirstName:    "Jane",
		LastName:     "Doe",
		AvatarLink:   "https://example.com/a.png",
		PasswordHash: "hashed",
	}
	assert.Empty(t, u.Validate())

	u.Email = "not-an-email"
	assert.Equal(t, "Email must have a valid format", u.Validate()["email"])

	u.Email = "jane@example.com"
	u.FirstName = "J"
	assert.Equal(t, "First name length must be between 2 and 70 characters", u.Validate()["firstName"])

	u.FirstName = strings.Repeat("a", 71)
	assert.Equal(t, "First name length must be between 2 and 70 characters", u.Validate()["firstName"])

	u.FirstName = "Jane"
	u.LastName = ""
	assert.Equal(t, "Last name cannot be empty", u.Validate()["lastName"])
}

func TestCommentValidate(t *testing.T) {
	c := Comment{Body: "Looks great"}
	assert.Empty(t, c.Validate())

	c.Body = ""
	assert.Equal(t, "Comment body cannot be empty", c.Validate()["body"])

	c.Body = strings.Repeat("x", 501)
	assert.Equal(t, "Comment cannot be longer than 500 characters", c.Validate()["body"])
}

func TestReportValidateReason(t *testing.T) {
	r := ReportUser{UserID: 1, ReportedUserID: 2, Reason: "spam"}
	assert.Empty(t, r.Validate())

	r.Reason = ""
	assert.Equal(t, "You need a reason for the report", r.Validate()["reason"])

	rc := ReportComment{UserID: 1, CommentID: 2, Reason: strings.Repeat("x", 256)}
	assert.Equal(t, "Your report reason cannot be longer than 255 characters", rc.Validate()["reason"])
}
