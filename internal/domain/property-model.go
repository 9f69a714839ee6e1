package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var PropertyTypes = []string{
	"house",
	"apartment",
	"tent",
	"cabin",
	"lot",
	"farm",
	"room",
	"mansion",
	"business",
	"office",
	"other",
}

var ListingTypes = []string{"sale", "rent"}

type Property struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"userId"`
	Title        string    `gorm:"not null" json:"title"`
	Type         string    `gorm:"not null" json:"type"`
	Bathrooms    *int      `json:"bathrooms"`
	Bedrooms     *int      `json:"bedrooms"`
	Size         *int      `json:"size"`
	Region       string    `gorm:"not null" json:"region"`
	Commune      string    `gorm:"not null" json:"commune"`
	Street       string    `gorm:"not null" json:"street"`
	StreetNumber *int      `json:"streetNumber"`
	Description  *string   `gorm:"type:text" json:"description"`
	Price        int       `gorm:"not null" json:"price"`
	ListingType  string    `gorm:"not null" json:"listingType"`
	ImageLink    string    `gorm:"not null" json:"imageLink"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Comments []Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:PropertyID" json:"comments,omitempty"`
	Meetings []Meeting `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:PropertyID" json:"meetings,omitempty"`
}

func (p *Property) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Region = strings.TrimSpace(p.Region)
	p.Commune = strings.TrimSpace(p.Commune)
	p.Street = strings.TrimSpace(p.Street)
	if p.Description != nil {
		trimmed := strings.TrimSpace(*p.Description)
		p.Description = &trimmed
	}
}

func (p *Property) Validate() map[string]string {
	errs := map[string]string{}
	validateText(errs, "title", "Title", p.Title)
	validateText(errs, "region", "Region name", p.Region)
	validateText(errs, "commune", "Commune name", p.Commune)
	validateText(errs, "street", "Street name", p.Street)
	if !contains(PropertyTypes, p.Type) {
		errs["type"] = fmt.Sprintf("Type must be one of the following: %s", strings.Join(PropertyTypes, ", "))
	}
	if !contains(ListingTypes, p.ListingType) {
		errs["listingType"] = fmt.Sprintf("Listing type must be one of the following: %s", strings.Join(ListingTypes, ", "))
	}
	validateRange(errs, "bathrooms", p.Bathrooms, 0, 999, "Bathroom quantity cannot be negative", "Bathroom quantity cannot be larger than 999")
	validateRange(errs, "bedrooms", p.Bedrooms, 0, 999, "Bedroom quantity cannot be negative", "Bedroom quantity cannot be larger than 999")
	validateRange(errs, "size", p.Size, 0, 999999, "Size cannot be negative", "Size cannot be larger than 999,999")
	validateRange(errs, "streetNumber", p.StreetNumber, 0, 999999, "Street number cannot be negative", "Street number cannot be larger than 999999")
	if p.Price < 1 {
		errs["price"] = "Price cannot be less than 1"
	} else if p.Price > 999999999 {
		errs["price"] = "Price cannot be greater than 999,999,999"
	}
	if p.Description != nil && utf8.RuneCountInString(*p.Description) > 1000 {
		errs["description"] = "Description cannot be longer than 1000 characters"
	}
	return errs
}

func validateText(errs map[string]string, field, label, value string) {
	if value == "" {
		errs[field] = fmt.Sprintf("%s cannot be empty", label)
		return
	}
	if utf8.RuneCountInString(value) > 255 {
		errs[field] = fmt.Sprintf("%s length must be between 1 and 255 characters", label)
	}
}

func validateRange(errs map[string]string, field string, value *int, min, max int, belowMsg, aboveMsg string) {
	if value == nil {
		return
	}
	if *value < min {
		errs[field] = belowMsg
	} else if *value > max {
		errs[field] = aboveMsg
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
