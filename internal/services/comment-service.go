package services

import (
	"github.com/findhomy/backend/internal/domain"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/repository"
)

type CommentService interface {
	ListComments(propertyID uint) ([]domain.Comment, error)
	GetComment(propertyID, commentID uint) (*domain.Comment, error)
	CreateComment(authorID, propertyID uint, input dto.CommentCreate) (*domain.Comment, error)
	UpdateComment(subjectID, propertyID, commentID uint, input dto.CommentUpdate) error
	DeleteComment(subjectID, propertyID, commentID uint) error
}

type commentService struct {
	repo         repository.CommentRepository
	propertyRepo repository.PropertyRepository
}

func NewCommentService(repo repository.CommentRepository, propertyRepo repository.PropertyRepository) CommentService {
	return &commentService{repo: repo, propertyRepo: propertyRepo}
}

func (s *commentService) ListComments(propertyID uint) ([]domain.Comment, error) {
	if _, err := s.propertyRepo.FindPropertyByID(propertyID); err != nil {
		return nil, helper.ErrNotFound(propertyKind, propertyID)
	}
	return s.repo.FindCommentsByPropertyID(propertyID)
}

// GetComment loads the comment and re-checks that it actually belongs to
// the property named in the path. A mismatch reads as not-found so the
// route never leaks which comments exist elsewhere.
func (s *commentService) GetComment(propertyID, commentID uint) (*domain.Comment, error) {
	comment, err := s.repo.FindCommentByID(commentID)
	if err != nil || comment.PropertyID != propertyID {
		return nil, helper.ErrNotFound("Comment", commentID)
	}
	return comment, nil
}

func (s *commentService) CreateComment(authorID, propertyID uint, input dto.CommentCreate) (*domain.Comment, error) {
	if _, err := s.propertyRepo.FindPropertyByID(propertyID); err != nil {
		return nil, helper.ErrNotFound(propertyKind, propertyID)
	}

	comment := &domain.Comment{
		PropertyID: propertyID,
		UserID:     authorID,
		Body:       input.Body,
	}
	comment.Normalize()

	if errs := comment.Validate(); len(errs) > 0 {
		return nil, helper.ErrValidation("Could not create comment", errs)
	}
	if err := s.repo.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) UpdateComment(subjectID, propertyID, commentID uint, input dto.CommentUpdate) error {
	comment, err := s.GetComment(propertyID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != subjectID {
		return helper.ErrUnauthorized("Unauthorized")
	}

	if input.Body != nil {
		comment.Body = *input.Body
	}
	comment.Normalize()

	if errs := comment.Validate(); len(errs) > 0 {
		return helper.ErrValidation("Could not modify comment", errs)
	}
	return s.repo.SaveComment(comment)
}

func (s *commentService) DeleteComment(subjectID, propertyID, commentID uint) error {
	comment, err := s.GetComment(propertyID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != subjectID {
		return helper.ErrUnauthorized("Unauthorized")
	}
	return s.repo.DeleteCommentCascade(commentID)
}
