package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

type Comment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"not null;index" json:"propertyId"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Reports []ReportComment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:CommentID" json:"reports,omitempty"`
}

func (c *Comment) Normalize() {
	c.Body = strings.TrimSpace(c.Body)
}

func (c *Comment) Validate() map[string]string {
	errs := map[string]string{}
	if c.Body == "" {
		errs["body"] = "Comment body cannot be empty"
	} else if utf8.RuneCountInString(c.Body) > 500 {
		errs["body"] = "Comment cannot be longer than 500 characters"
	}
	return errs
}
