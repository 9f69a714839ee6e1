package repository

import (
	"errors"

	"github.com/findhomy/backend/internal/domain"
	"gorm.io/gorm"
)

type PropertyRepository interface {
	CreateProperty(property *domain.Property) error
	FindAllProperties() ([]domain.Property, error)
	FindPropertyByID(propertyID uint) (*domain.Property, error)
	SaveProperty(property *domain.Property) error
	DeletePropertyCascade(propertyID uint) error
}

type propertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) CreateProperty(property *domain.Property) error {
	if property == nil {
		return errors.New("nil property")
	}
	return r.db.Create(property).Error
}

func (r *propertyRepository) FindAllProperties() ([]domain.Property, error) {
	var properties []domain.Property
	if err := r.db.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) FindPropertyByID(propertyID uint) (*domain.Property, error) {
	property := &domain.Property{}
	if err := r.db.First(property, propertyID).Error; err != nil {
		return nil, err
	}
	return property, nil
}

func (r *propertyRepository) SaveProperty(property *domain.Property) error {
	if property == nil {
		return errors.New("nil property")
	}
	return r.db.Save(property).Error
}

// DeletePropertyCascade removes the listing together with its comments,
// those comments' reports, and its meetings, in one transaction.
func (r *propertyRepository) DeletePropertyCascade(propertyID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var commentIDs []uint
		if err := tx.Model(&domain.Comment{}).Where("property_id = ?", propertyID).Pluck("id", &commentIDs).Error; err != nil {
			return err
		}
		if len(commentIDs) > 0 {
			if err := tx.Where("comment_id IN ?", commentIDs).Delete(&domain.ReportComment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", commentIDs).Delete(&domain.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("property_id = ?", propertyID).Delete(&domain.Meeting{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Property{}, propertyID).Error
	})
}
