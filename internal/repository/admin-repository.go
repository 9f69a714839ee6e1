package repository

import (
	"errors"

	"github.com/findhomy/backend/internal/domain"
	"gorm.io/gorm"
)

type AdminRepository interface {
	CreateAdmin(admin *domain.Admin) error
	FindAdminByEmail(email string) (*domain.Admin, error)
	FindAdminByID(adminID uint) (*domain.Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(admin *domain.Admin) error {
	if admin == nil {
		return errors.New("nil admin")
	}
	return r.db.Create(admin).Error
}

func (r *adminRepository) FindAdminByEmail(email string) (*domain.Admin, error) {
	admin := &domain.Admin{}
	if err := r.db.First(admin, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *adminRepository) FindAdminByID(adminID uint) (*domain.Admin, error) {
	admin := &domain.Admin{}
	if err := r.db.First(admin, adminID).Error; err != nil {
		return nil, err
	}
	return admin, nil
}
