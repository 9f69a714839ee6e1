package dto

// WelcomeEmailEvent is published to the mail topic when a user signs up.
type WelcomeEmailEvent struct {
	Event     string `json:"event"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}
