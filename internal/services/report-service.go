package services

import (
	"fmt"

	"github.com/findhomy/backend/internal/domain"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/repository"
)

type ReportService interface {
	ReportUser(reporterID, reportedUserID uint, input dto.ReportCreate) (*domain.ReportUser, error)
	ReportComment(reporterID, commentID uint, input dto.ReportCreate) (*domain.ReportComment, error)
}

type reportService struct {
	repo        repository.ReportRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
}

func NewReportService(
	repo repository.ReportRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
) ReportService {
	return &reportService{
		repo:        repo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
	}
}

func (s *reportService) ReportUser(reporterID, reportedUserID uint, input dto.ReportCreate) (*domain.ReportUser, error) {
	if _, err := s.userRepo.FindUserByID(reportedUserID); err != nil {
		return nil, helper.ErrNotFound("User", reportedUserID)
	}

	report := &domain.ReportUser{
		UserID:         reporterID,
		ReportedUserID: reportedUserID,
		Reason:         input.Reason,
	}
	report.Normalize()

	if errs := report.Validate(); len(errs) > 0 {
		return nil, helper.ErrValidation(
			fmt.Sprintf("Could not create report for user with id '%d'", reportedUserID), errs)
	}

	if err := s.repo.CreateUserReport(report); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, helper.ErrValidation(
				fmt.Sprintf("Could not create report for user with id '%d'", reportedUserID),
				map[string]string{"reportedUserId": "You have already reported this user"})
		}
		return nil, err
	}
	return report, nil
}

func (s *reportService) ReportComment(reporterID, commentID uint, input dto.ReportCreate) (*domain.ReportComment, error) {
	if _, err := s.commentRepo.FindCommentByID(commentID); err != nil {
		return nil, helper.ErrNotFound("Comment", commentID)
	}

	report := &domain.ReportComment{
		UserID:    reporterID,
		CommentID: commentID,
		Reason:    input.Reason,
	}
	report.Normalize()

	if errs := report.Validate(); len(errs) > 0 {
		return nil, helper.ErrValidation(
			fmt.Sprintf("Could not create report for comment with id '%d'", commentID), errs)
	}

	if err := s.repo.CreateCommentReport(report); err != nil {
		return nil, err
	}
	return report, nil
}
