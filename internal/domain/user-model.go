package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	AvatarLink   string    `gorm:"not null" json:"avatarLink"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Normalize trims user-provided strings before validation and storage.
func (u *User) Normalize() {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
}

// Validate collects every violated field; it never stops at the first one.
func (u *User) Validate() map[string]string {
	errs := map[string]string{}
	if !emailPattern.MatchString(u.Email) {
		errs["email"] = "Email must have a valid format"
	}
	validateName(errs, "firstName", "First name", u.FirstName)
	validateName(errs, "lastName", "Last name", u.LastName)
	if u.AvatarLink == "" {
		errs["avatarLink"] = "Avatar link cannot be empty"
	}
	if u.PasswordHash == "" {
		errs["password"] = "Password cannot be empty"
	}
	return errs
}

func validateName(errs map[string]string, field, label, value string) {
	if value == "" {
		errs[field] = fmt.Sprintf("%s cannot be empty", label)
		return
	}
	if n := utf8.RuneCountInString(value); n < 2 || n > 70 {
		errs[field] = fmt.Sprintf("%s length must be between 2 and 70 characters", label)
	}
}
