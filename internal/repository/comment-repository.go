package repository

import (
	"errors"

	"github.com/findhomy/backend/internal/domain"
	"gorm.io/gorm"
)

type CommentRepository interface {
	CreateComment(comment *domain.Comment) error
	FindCommentByID(commentID uint) (*domain.Comment, error)
	FindCommentsByPropertyID(propertyID uint) ([]domain.Comment, error)
	FindCommentsByIDs(ids []uint) ([]domain.Comment, error)
	SaveComment(comment *domain.Comment) error
	DeleteCommentCascade(commentID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) CreateComment(comment *domain.Comment) error {
	if comment == nil {
		return errors.New("nil comment")
	}
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindCommentByID(commentID uint) (*domain.Comment, error) {
	comment := &domain.Comment{}
	if err := r.db.First(comment, commentID).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func (r *commentRepository) FindCommentsByPropertyID(propertyID uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	if err := r.db.Where("property_id = ?", propertyID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) FindCommentsByIDs(ids []uint) ([]domain.Comment, error) {
	var comments []domain.Comment
	if len(ids) == 0 {
		return comments, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentRepository) SaveComment(comment *domain.Comment) error {
	if comment == nil {
		return errors.New("nil comment")
	}
	return r.db.Save(comment).Error
}

// DeleteCommentCascade removes the comment and its abuse reports together.
func (r *commentRepository) DeleteCommentCascade(commentID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentID).Delete(&domain.ReportComment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Comment{}, commentID).Error
	})
}
