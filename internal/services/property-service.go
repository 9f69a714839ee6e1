package services

import (
	"mime/multipart"

	"github.com/findhomy/backend/internal/domain"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/interfaces"
	"github.com/findhomy/backend/internal/repository"
)

const DefaultPropertyImageLink = "https://ia800707.us.archive.org/25/items/MinecraftSmallDirtHouse" +
	"/Minecraft_Small_Dirt_House.png"

// propertyKind is how Property renders in not-found messages.
const propertyKind = "Property listing"

type PropertyService interface {
	ListProperties() ([]domain.Property, error)
	GetProperty(propertyID uint) (*domain.Property, error)
	CreateProperty(ownerID uint, input dto.PropertyCreate, imageFile *multipart.FileHeader) (*domain.Property, error)
	UpdateProperty(subjectID, propertyID uint, input dto.PropertyUpdate, imageFile *multipart.FileHeader) error
	DeleteProperty(subjectID, propertyID uint) error
}

type propertyService struct {
	repo     repository.PropertyRepository
	uploader interfaces.Uploader
}

func NewPropertyService(repo repository.PropertyRepository, uploader interfaces.Uploader) PropertyService {
	return &propertyService{repo: repo, uploader: uploader}
}

func (s *propertyService) ListProperties() ([]domain.Property, error) {
	return s.repo.FindAllProperties()
}

func (s *propertyService) GetProperty(propertyID uint) (*domain.Property, error) {
	property, err := s.repo.FindPropertyByID(propertyID)
	if err != nil {
		return nil, helper.ErrNotFound(propertyKind, propertyID)
	}
	return property, nil
}

func (s *propertyService) CreateProperty(ownerID uint, input dto.PropertyCreate, imageFile *multipart.FileHeader) (*domain.Property, error) {
	property := &domain.Property{
		UserID:       ownerID,
		Title:        input.Title,
		Type:         input.Type,
		Bathrooms:    input.Bathrooms,
		Bedrooms:     input.Bedrooms,
		Size:         input.Size,
		Region:       input.Region,
		Commune:      input.Commune,
		Street:       input.Street,
		StreetNumber: input.StreetNumber,
		Description:  input.Description,
		Price:        input.Price,
		ListingType:  input.ListingType,
		ImageLink:    DefaultPropertyImageLink,
	}
	property.Normalize()

	if errs := property.Validate(); len(errs) > 0 {
		return nil, helper.ErrValidation("Could not create property listing", errs)
	}

	if imageFile != nil {
		newURL, err := uploadImage(
			s.uploader,
			"findhomy/property",
			imageFile,
			propertyImageSizeLimit,
			"Property image size cannot be larger than 2 MB",
		)
		if err != nil {
			return nil, err
		}
		property.ImageLink = newURL
	}

	if err := s.repo.CreateProperty(property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *propertyService) UpdateProperty(subjectID, propertyID uint, input dto.PropertyUpdate, imageFile *multipart.FileHeader) error {
	property, err := s.repo.FindPropertyByID(propertyID)
	if err != nil {
		return helper.ErrNotFound(propertyKind, propertyID)
	}
	if property.UserID != subjectID {
		return helper.ErrUnauthorized("Unauthorized")
	}

	applyPropertyUpdate(property, input)
	property.Normalize()

	if errs := property.Validate(); len(errs) > 0 {
		return helper.ErrValidation("Could not modify property listing", errs)
	}

	if imageFile != nil {
		newURL, err := uploadImage(
			s.uploader,
			"findhomy/property",
			imageFile,
			propertyImageSizeLimit,
			"Property image size cannot be larger than 2 MB",
		)
		if err != nil {
			return err
		}
		oldURL := property.ImageLink
		property.ImageLink = newURL
		if oldURL != "" && oldURL != DefaultPropertyImageLink {
			deleteImage(s.uploader, oldURL)
		}
	}

	return s.repo.SaveProperty(property)
}

func (s *propertyService) DeleteProperty(subjectID, propertyID uint) error {
	property, err := s.repo.FindPropertyByID(propertyID)
	if err != nil {
		return helper.ErrNotFound(propertyKind, propertyID)
	}
	if property.UserID != subjectID {
		return helper.ErrUnauthorized("Unauthorized")
	}

	if property.ImageLink != "" && property.ImageLink != DefaultPropertyImageLink {
		deleteImage(s.uploader, property.ImageLink)
	}
	return s.repo.DeletePropertyCascade(propertyID)
}

func applyPropertyUpdate(property *domain.Property, input dto.PropertyUpdate) {
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Type != nil {
		property.Type = *input.Type
	}
	if input.Bathrooms != nil {
		property.Bathrooms = input.Bathrooms
	}
	if input.Bedrooms != nil {
		property.Bedrooms = input.Bedrooms
	}
	if input.Size != nil {
		property.Size = input.Size
	}
	if input.Region != nil {
		property.Region = *input.Region
	}
	if input.Commune != nil {
		property.Commune = *input.Commune
	}
	if input.Street != nil {
		property.Street = *input.Street
	}
	if input.StreetNumber != nil {
		property.StreetNumber = input.StreetNumber
	}
	if input.Description != nil {
		property.Description = input.Description
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.ListingType != nil {
		property.ListingType = *input.ListingType
	}
}
