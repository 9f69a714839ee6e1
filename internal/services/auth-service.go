package services

import (
	"strings"

	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/repository"
)

type AuthService interface {
	Login(email, password string) (string, error)
}

type authService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
	auth      helper.Auth
}

func NewAuthService(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
	auth helper.Auth,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		adminRepo: adminRepo,
		auth:      auth,
	}
}

// Login resolves the email against the user table first and only falls
// back to the admin table when no user matches. The two identity spaces
// are disjoint, so an email existing in both resolves as a user.
func (s *authService) Login(email, password string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if len(password) < 6 {
		return "", helper.ErrUnprocessable("Could not authenticate", map[string]string{
			"password": "Password must be at least 6 characters",
		})
	}

	if user, err := s.userRepo.FindUserByEmail(email); err == nil {
		if s.auth.VerifyPassword(password, user.PasswordHash) == nil {
			token, err := s.auth.GenerateUserToken(user.ID)
			if err != nil {
				return "", err
			}
			return token, nil
		}
		return "", helper.ErrUnauthorized("Incorrect email or password")
	}

	if admin, err := s.adminRepo.FindAdminByEmail(email); err == nil {
		if s.auth.VerifyPassword(password, admin.PasswordHash) == nil {
			token, err := s.auth.GenerateAdminToken(admin.ID)
			if err != nil {
				return "", err
			}
			return token, nil
		}
	}

	return "", helper.ErrUnauthorized("Incorrect email or password")
}
