package dto

import (
	"time"

	"github.com/findhomy/backend/internal/domain"
)

type ReportCreate struct {
	Reason string `json:"reason"`
}

// CommentReportView is what admins see when listing comment reports: the
// report joined with the offending comment's body and creation time.
type CommentReportView struct {
	domain.ReportComment
	Comment CommentSummary `json:"comment"`
}

type CommentSummary struct {
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserReportView joins a user report with the reported user's public
// profile. The password hash never leaves the storage layer here.
type UserReportView struct {
	domain.ReportUser
	ReportedUser ReportedUserSummary `json:"reportedUser"`
}

type ReportedUserSummary struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	AvatarLink string `json:"avatarLink"`
	Email      string `json:"email"`
}
