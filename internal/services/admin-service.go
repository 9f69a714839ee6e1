package services

import (
	"fmt"

	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/repository"
)

type AdminReports struct {
	CommentReports []dto.CommentReportView `json:"commentReports"`
	UserReports    []dto.UserReportView    `json:"userReports"`
}

type AdminService interface {
	ListReports() (*AdminReports, error)
	DeleteUser(userID uint) error
	DeleteProperty(propertyID uint) error
	DeleteComment(propertyID, commentID uint) error
}

type adminService struct {
	userRepo     repository.UserRepository
	propertyRepo repository.PropertyRepository
	commentRepo  repository.CommentRepository
	reportRepo   repository.ReportRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	propertyRepo repository.PropertyRepository,
	commentRepo repository.CommentRepository,
	reportRepo repository.ReportRepository,
) AdminService {
	return &adminService{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		commentRepo:  commentRepo,
		reportRepo:   reportRepo,
	}
}

// ListReports joins each comment report with the offending comment and
// each user report with the reported user's public profile.
func (s *adminService) ListReports() (*AdminReports, error) {
	commentReports, err := s.reportRepo.ListCommentReports()
	if err != nil {
		return nil, err
	}
	userReports, err := s.reportRepo.ListUserReports()
	if err != nil {
		return nil, err
	}

	commentIDs := make([]uint, 0, len(commentReports))
	for _, r := range commentReports {
		commentIDs = append(commentIDs, r.CommentID)
	}
	comments, err := s.commentRepo.FindCommentsByIDs(commentIDs)
	if err != nil {
		return nil, err
	}
	commentsByID := make(map[uint]dto.CommentSummary, len(comments))
	for _, c := range comments {
		commentsByID[c.ID] = dto.CommentSummary{Body: c.Body, CreatedAt: c.CreatedAt}
	}

	userIDs := make([]uint, 0, len(userReports))
	for _, r := range userReports {
		userIDs = append(userIDs, r.ReportedUserID)
	}
	users, err := s.userRepo.FindUsersByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	usersByID := make(map[uint]dto.ReportedUserSummary, len(users))
	for _, u := range users {
		usersByID[u.ID] = dto.ReportedUserSummary{
			ID:         u.ID,
			FirstName:  u.FirstName,
			LastName:   u.LastName,
			AvatarLink: u.AvatarLink,
			Email:      u.Email,
		}
	}

	result := &AdminReports{
		CommentReports: make([]dto.CommentReportView, 0, len(commentReports)),
		UserReports:    make([]dto.UserReportView, 0, len(userReports)),
	}
	for _, r := range commentReports {
		result.CommentReports = append(result.CommentReports, dto.CommentReportView{
			ReportComment: r,
			Comment:       commentsByID[r.CommentID],
		})
	}
	for _, r := range userReports {
		result.UserReports = append(result.UserReports, dto.UserReportView{
			ReportUser:   r,
			ReportedUser: usersByID[r.ReportedUserID],
		})
	}
	return result, nil
}

func (s *adminService) DeleteUser(userID uint) error {
	if _, err := s.userRepo.FindUserByID(userID); err != nil {
		return helper.ErrNotFound("User", userID)
	}
	return s.userRepo.DeleteUserCascade(userID)
}

func (s *adminService) DeleteProperty(propertyID uint) error {
	if _, err := s.propertyRepo.FindPropertyByID(propertyID); err != nil {
		return helper.ErrNotFound(propertyKind, propertyID)
	}
	return s.propertyRepo.DeletePropertyCascade(propertyID)
}

// DeleteComment re-checks the parent relationship from the loaded row; a
// comment living under a different property reads as not-found.
func (s *adminService) DeleteComment(propertyID, commentID uint) error {
	comment, err := s.commentRepo.FindCommentByID(commentID)
	if err != nil {
		return helper.ErrNotFound("Comment", commentID)
	}
	if comment.PropertyID != propertyID {
		return helper.NewAPIError(404, fmt.Sprintf("Could not delete comment '%d'", commentID))
	}
	return s.commentRepo.DeleteCommentCascade(commentID)
}
