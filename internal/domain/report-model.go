package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ReportComment is an abuse report filed by a user against a comment.
type ReportComment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	CommentID uint      `gorm:"not null;index" json:"commentId"`
	Reason    string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *ReportComment) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
}

func (r *ReportComment) Validate() map[string]string {
	return validateReason(r.Reason)
}

// ReportUser is an abuse report filed by a user against another user.
// A reporter can report a given user at most once.
type ReportUser struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;uniqueIndex:idx_report_user_pair" json:"userId"`
	ReportedUserID uint      `gorm:"not null;uniqueIndex:idx_report_user_pair" json:"reportedUserId"`
	Reason         string    `gorm:"type:text;not null" json:"reason"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (r *ReportUser) Normalize() {
	r.Reason = strings.TrimSpace(r.Reason)
}

func (r *ReportUser) Validate() map[string]string {
	return validateReason(r.Reason)
}

func validateReason(reason string) map[string]string {
	errs := map[string]string{}
	if reason == "" {
		errs["reason"] = "You need a reason for the report"
	} else if utf8.RuneCountInString(reason) > 255 {
		errs["reason"] = "Your report reason cannot be longer than 255 characters"
	}
	return errs
}
