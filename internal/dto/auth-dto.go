package dto

// AuthClaims is the authenticated subject extracted from a verified token.
type AuthClaims struct {
	SubjectID uint
	IsAdmin   bool
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
