package services

import (
	"time"

	"github.com/findhomy/backend/internal/domain"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/repository"
)

type UserMeetings struct {
	BuyerMeetings  []domain.Meeting `json:"buyerMeetings"`
	SellerMeetings []domain.Meeting `json:"sellerMeetings"`
}

type MeetingService interface {
	CreateMeeting(buyerID, propertyID uint, input dto.MeetingCreate) (*domain.Meeting, error)
	ListPropertyMeetings(subjectID, propertyID uint) ([]domain.Meeting, error)
	ListUserMeetings(userID uint) (*UserMeetings, error)
	GetMeeting(subjectID, meetingID uint) (*domain.Meeting, error)
	UpdateMeeting(subjectID, meetingID uint, input dto.MeetingUpdate) error
	DeleteMeeting(subjectID, meetingID uint) error
}

type meetingService struct {
	repo         repository.MeetingRepository
	propertyRepo repository.PropertyRepository
}

func NewMeetingService(repo repository.MeetingRepository, propertyRepo repository.PropertyRepository) MeetingService {
	return &meetingService{repo: repo, propertyRepo: propertyRepo}
}

// CreateMeeting books the authenticated subject as buyer and the listing
// owner as seller. Owners cannot book meetings on their own listings.
func (s *meetingService) CreateMeeting(buyerID, propertyID uint, input dto.MeetingCreate) (*domain.Meeting, error) {
	property, err := s.propertyRepo.FindPropertyByID(propertyID)
	if err != nil {
		return nil, helper.ErrNotFound(propertyKind, propertyID)
	}
	if buyerID == property.UserID {
		return nil, helper.NewAPIError(400, "Cannot create meeting for your own property")
	}

	meeting := &domain.Meeting{
		BuyerID:    buyerID,
		SellerID:   property.UserID,
		PropertyID: property.ID,
		Type:       input.Type,
	}

	errs := map[string]string{}
	date, err := dto.ParseMeetingDate(input.Date)
	if err != nil {
		errs["date"] = "Date must be a valid ISO 8601 datetime"
	} else {
		meeting.Date = date
	}
	for field, msg := range meeting.ValidateNew(time.Now()) {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return nil, helper.ErrValidation("Could not create meeting", errs)
	}

	if err := s.repo.CreateMeeting(meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// ListPropertyMeetings is restricted to the listing owner.
func (s *meetingService) ListPropertyMeetings(subjectID, propertyID uint) ([]domain.Meeting, error) {
	property, err := s.propertyRepo.FindPropertyByID(propertyID)
	if err != nil {
		return nil, helper.ErrNotFound(propertyKind, propertyID)
	}
	if property.UserID != subjectID {
		return nil, helper.ErrUnauthorized("Unauthorized")
	}
	return s.repo.FindMeetingsByPropertyID(propertyID)
}

// ListUserMeetings keeps the buyer and seller sides separate; the client
// gets two lists, not a merged one.
func (s *meetingService) ListUserMeetings(userID uint) (*UserMeetings, error) {
	buyerMeetings, err := s.repo.FindMeetingsByBuyerID(userID)
	if err != nil {
		return nil, err
	}
	sellerMeetings, err := s.repo.FindMeetingsBySellerID(userID)
	if err != nil {
		return nil, err
	}
	return &UserMeetings{
		BuyerMeetings:  buyerMeetings,
		SellerMeetings: sellerMeetings,
	}, nil
}

func (s *meetingService) GetMeeting(subjectID, meetingID uint) (*domain.Meeting, error) {
	meeting, err := s.repo.FindMeetingByID(meetingID)
	if err != nil {
		return nil, helper.ErrNotFound("Meeting", meetingID)
	}
	if subjectID != meeting.BuyerID && subjectID != meeting.SellerID {
		return nil, helper.ErrUnauthorized("Unauthorized")
	}
	return meeting, nil
}

func (s *meetingService) UpdateMeeting(subjectID, meetingID uint, input dto.MeetingUpdate) error {
	meeting, err := s.GetMeeting(subjectID, meetingID)
	if err != nil {
		return err
	}

	errs := map[string]string{}
	if input.Type != nil {
		meeting.Type = *input.Type
	}
	if input.Date != nil {
		date, err := dto.ParseMeetingDate(*input.Date)
		if err != nil {
			errs["date"] = "Date must be a valid ISO 8601 datetime"
		} else {
			meeting.Date = date
		}
	}
	for field, msg := range meeting.Validate() {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return helper.ErrValidation("Could not modify meeting", errs)
	}

	return s.repo.SaveMeeting(meeting)
}

func (s *meetingService) DeleteMeeting(subjectID, meetingID uint) error {
	if _, err := s.GetMeeting(subjectID, meetingID); err != nil {
		return err
	}
	return s.repo.DeleteMeeting(meetingID)
}
