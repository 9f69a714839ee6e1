package repository

import (
	"errors"

	"github.com/findhomy/backend/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) error
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	FindUsersByIDs(ids []uint) ([]domain.User, error)
	SaveUser(user *domain.User) error
	DeleteUserCascade(userID uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Create(user).Error
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, userID).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUsersByIDs(ids []uint) ([]domain.User, error) {
	var users []domain.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Save(user).Error
}

// DeleteUserCascade removes the user and every row that references them:
// properties (with their comments, meetings and comment reports), comments
// on other properties, meetings as buyer or seller, and reports made or
// received. Runs in one transaction so a failure leaves no orphans.
func (r *userRepository) DeleteUserCascade(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var propertyIDs []uint
		if err := tx.Model(&domain.Property{}).Where("user_id = ?", userID).Pluck("id", &propertyIDs).Error; err != nil {
			return err
		}

		commentQuery := tx.Model(&domain.Comment{}).Where("user_id = ?", userID)
		if len(propertyIDs) > 0 {
			commentQuery = tx.Model(&domain.Comment{}).
				Where("user_id = ? OR property_id IN ?", userID, propertyIDs)
		}
		var commentIDs []uint
		if err := commentQuery.Pluck("id", &commentIDs).Error; err != nil {
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
		if len(propertyIDs) > 0 {
			if err := tx.Where("property_id IN ?", propertyIDs).Delete(&domain.Meeting{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", propertyIDs).Delete(&domain.Property{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("buyer_id = ? OR seller_id = ?", userID, userID).Delete(&domain.Meeting{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ? OR reported_user_id = ?", userID, userID).Delete(&domain.ReportUser{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&domain.ReportComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.User{}, userID).Error
	})
}
