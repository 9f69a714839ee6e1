package domain

import (
	"fmt"
	"strings"
	"time"
)

var MeetingTypes = []string{"remote", "face-to-face"}

type Meeting struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BuyerID    uint      `gorm:"not null;index" json:"buyerId"`
	SellerID   uint      `gorm:"not null;index" json:"sellerId"`
	PropertyID uint      `gorm:"not null;index" json:"propertyId"`
	Type       string    `gorm:"not null" json:"type"`
	Date       time.Time `gorm:"not null" json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate checks the fields that hold at any time. The future-date rule
// only binds at creation, so it lives in ValidateNew.
func (m *Meeting) Validate() map[string]string {
	errs := map[string]string{}
	if !contains(MeetingTypes, m.Type) {
		errs["type"] = fmt.Sprintf("Type must be one of the following: %s", strings.Join(MeetingTypes, ", "))
	}
	if m.BuyerID != 0 && m.BuyerID == m.SellerID {
		errs["buyerId"] = "Buyer and seller cannot be the same user"
	}
	return errs
}

// ValidateNew additionally requires the meeting date to be in the future.
func (m *Meeting) ValidateNew(now time.Time) map[string]string {
	errs := m.Validate()
	if !m.Date.After(now) {
		errs["date"] = "Date cannot be earlier than present"
	}
	return errs
}
