package service

import (
	"errors"
	"fmt"

	"github.com/dharunks/insightiq/internal/apperr"
	"github.com/dharunks/insightiq/internal/dto"
	"github.com/dharunks/insightiq/internal/model"
	"github.com/dharunks/insightiq/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	Register(req dto.UserCreateDTO) (*dto.UserResponseDTO, error)
	GetUser(userID uint) (*dto.UserResponseDTO, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(req dto.UserCreateDTO) (*dto.UserResponseDTO, error) {
	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password, // hashed by the model's BeforeSave hook
	}
	if err := s.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validationf("username or email is already taken")
		}
		return nil, &apperr.PersistenceError{Err: fmt.Errorf("creating user: %w", err)}
	}
	log.Info().Uint("userID", user.ID).Str("username", user.Username).Msg("Registered new user")

	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) GetUser(userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperr.NotFoundError{Resource: "user", ID: userID}
		}
		return nil, &apperr.PersistenceError{Err: err}
	}
	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}
