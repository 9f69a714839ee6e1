package dto

import "time"

type MeetingCreate struct {
	Type string `json:"type"`
	Date string `json:"date"`
}

type MeetingUpdate struct {
	Type *string `json:"type"`
	Date *string `json:"date"`
}

// ParseMeetingDate accepts the wire format for meeting dates (RFC 3339).
func ParseMeetingDate(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}
