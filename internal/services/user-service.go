package services

import (
	"encoding/json"
	"log"
	"mime/multipart"
	"strings"

	"github.com/findhomy/backend/internal/domain"
	"github.com/findhomy/backend/internal/dto"
	"github.com/findhomy/backend/internal/helper"
	"github.com/findhomy/backend/internal/interfaces"
	"github.com/findhomy/backend/internal/repository"
)

const DefaultAvatarLink = "https://png.pngtree.com/png-vector/20191026/ourlarge/" +
	"pngtree-avatar-vector-icon-white-background-png-image_1870181.jpg"

type UserService interface {
	Register(input dto.UserSignup) (*domain.User, error)
	GetUser(userID uint) (*domain.User, error)
	UpdateUser(userID uint, input dto.UserUpdate, avatarFile *multipart.FileHeader) error
}

type userService struct {
	repo     repository.UserRepository
	auth     helper.Auth
	uploader interfaces.Uploader
	producer interfaces.ProducerHandler
}

func NewUserService(
	repo repository.UserRepository,
	auth helper.Auth,
	uploader interfaces.Uploader,
	producer interfaces.ProducerHandler,
) UserService {
	return &userService{
		repo:     repo,
		auth:     auth,
		uploader: uploader,
		producer: producer,
	}
}

func (s *userService) Register(input dto.UserSignup) (*domain.User, error) {
	user := &domain.User{
		Email:      input.Email,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		AvatarLink: DefaultAvatarLink,
	}
	user.Normalize()

	errs := map[string]string{}
	if len(input.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	} else {
		hashed, err := s.auth.HashPassword(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hashed
	}

	for field, msg := range user.Validate() {
		if field != "password" {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return nil, helper.ErrValidation("Could not create user", errs)
	}

	if err := s.repo.CreateUser(user); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, helper.ErrValidation("Could not create user", map[string]string{
				"email": "There's already another account using that email",
			})
		}
		return nil, err
	}

	s.publishWelcomeEmail(user)
	return user, nil
}

func (s *userService) GetUser(userID uint) (*domain.User, error) {
	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return nil, helper.ErrNotFound("User", userID)
	}
	return user, nil
}

func (s *userService) UpdateUser(userID uint, input dto.UserUpdate, avatarFile *multipart.FileHeader) error {
	user, err := s.repo.FindUserByID(userID)
	if err != nil {
		return helper.ErrNotFound("User", userID)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	user.Normalize()

	errs := map[string]string{}
	if input.Password != nil {
		if len(*input.Password) < 6 {
			errs["password"] = "Password must be at least 6 characters"
		} else {
			hashed, err := s.auth.HashPassword(*input.Password)
			if err != nil {
				return err
			}
			user.PasswordHash = hashed
		}
	}
	for field, msg := range user.Validate() {
		if field != "password" {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return helper.ErrValidation("Could not modify user", errs)
	}

	if avatarFile != nil {
		newURL, err := uploadImage(
			s.uploader,
			"findhomy/profile",
			avatarFile,
			profileImageSizeLimit,
			"Profile picture size cannot be larger than 200 kB",
		)
		if err != nil {
			return err
		}
		oldURL := user.AvatarLink
		user.AvatarLink = newURL
		if oldURL != "" && oldURL != DefaultAvatarLink {
			deleteImage(s.uploader, oldURL)
		}
	}

	if err := s.repo.SaveUser(user); err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.ErrValidation("Could not modify user", map[string]string{
				"email": "There's already another account using that email",
			})
		}
		return err
	}
	return nil
}

// publishWelcomeEmail is best effort: signup never fails because the
// broker is down.
func (s *userService) publishWelcomeEmail(user *domain.User) {
	event := dto.WelcomeEmailEvent{
		Event:     "user.registered",
		Email:     user.Email,
		FirstName: user.FirstName,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal welcome email event error: %v", err)
		return
	}
	if err := s.producer.PublishMessage([]byte(strings.ToLower(user.Email)), payload); err != nil {
		log.Printf("publish welcome email event error: %v", err)
	}
}
