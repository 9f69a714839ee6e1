package repository

import (
	"errors"

	"github.com/findhomy/backend/internal/domain"
	"gorm.io/gorm"
)

type MeetingRepository interface {
	CreateMeeting(meeting *domain.Meeting) error
	FindMeetingByID(meetingID uint) (*domain.Meeting, error)
	FindMeetingsByPropertyID(propertyID uint) ([]domain.Meeting, error)
	FindMeetingsByBuyerID(buyerID uint) ([]domain.Meeting, error)
	FindMeetingsBySellerID(sellerID uint) ([]domain.Meeting, error)
	SaveMeeting(meeting *domain.Meeting) error
	DeleteMeeting(meetingID uint) error
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) CreateMeeting(meeting *domain.Meeting) error {
	if meeting == nil {
		return errors.New("nil meeting")
	}
	return r.db.Create(meeting).Error
}

func (r *meetingRepository) FindMeetingByID(meetingID uint) (*domain.Meeting, error) {
	meeting := &domain.Meeting{}
	if err := r.db.First(meeting, meetingID).Error; err != nil {
		return nil, err
	}
	return meeting, nil
}

func (r *meetingRepository) FindMeetingsByPropertyID(propertyID uint) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := r.db.Where("property_id = ?", propertyID).Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) FindMeetingsByBuyerID(buyerID uint) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := r.db.Where("buyer_id = ?", buyerID).Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) FindMeetingsBySellerID(sellerID uint) ([]domain.Meeting, error) {
	var meetings []domain.Meeting
	if err := r.db.Where("seller_id = ?", sellerID).Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (r *meetingRepository) SaveMeeting(meeting *domain.Meeting) error {
	if meeting == nil {
		return errors.New("nil meeting")
	}
	return r.db.Save(meeting).Error
}

func (r *meetingRepository) DeleteMeeting(meetingID uint) error {
	return r.db.Delete(&domain.Meeting{}, meetingID).Error
}
