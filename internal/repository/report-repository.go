package repository

import (
	"errors"

	"github.com/findhomy/backend/internal/domain"
	"gorm.io/gorm"
)

type ReportRepository interface {
	CreateCommentReport(report *domain.ReportComment) error
	CreateUserReport(report *domain.ReportUser) error
	ListCommentReports() ([]domain.ReportComment, error)
	ListUserReports() ([]domain.ReportUser, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CreateCommentReport(report *domain.ReportComment) error {
	if report == nil {
		return errors.New("nil report")
	}
	return r.db.Create(report).Error
}

func (r *reportRepository) CreateUserReport(report *domain.ReportUser) error {
	if report == nil {
		return errors.New("nil report")
	}
	return r.db.Create(report).Error
}

func (r *reportRepository) ListCommentReports() ([]domain.ReportComment, error) {
	var reports []domain.ReportComment
	if err := r.db.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *reportRepository) ListUserReports() ([]domain.ReportUser, error) {
	var reports []domain.ReportUser
	if err := r.db.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}
