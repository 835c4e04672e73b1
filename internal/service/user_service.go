package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"shareit/internal/dto"
	"shareit/internal/models"
	"shareit/internal/repository"
	"shareit/pkg/rabbitmq"
)

type UserService interface {
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	AddUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*models.User, error)
	DeleteUserByID(ctx context.Context, id uint) error
	DeleteAllUsers(ctx context.Context) error
}

type userService struct {
	users     repository.UserRepository
	publisher *rabbitmq.Publisher
	log       zerolog.Logger
}

func NewUserService(users repository.UserRepository, publisher *rabbitmq.Publisher, log zerolog.Logger) UserService {
	return &userService{users: users, publisher: publisher, log: log}
}

func (s *userService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) AddUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	if err := s.checkEmail(ctx, req.Email, 0); err != nil {
		return nil, err
	}

	user := &models.User{Name: req.Name, Email: req.Email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Uint("user_id", user.ID).Msg("user registered")
	if s.publisher != nil {
		_ = s.publisher.Publish("user.created", user)
	}
	return user, nil
}

// UpdateUser applies a partial update: only the fields present in the
// request are validated and written.
func (s *userService) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil {
		if err := s.checkEmail(ctx, *req.Email, id); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info().Uint("user_id", id).Msg("user updated")
	return user, nil
}

func (s *userService) DeleteUserByID(ctx context.Context, id uint) error {
	s.log.Info().Uint("user_id", id).Msg("deleting user")
	return s.users.DeleteByID(ctx, id)
}

func (s *userService) DeleteAllUsers(ctx context.Context) error {
	s.log.Info().Msg("deleting all users")
	return s.users.DeleteAll(ctx)
}

// checkEmail validates the address shape and rejects addresses already
// registered to a different user. selfID 0 means a brand-new user.
func (s *userService) checkEmail(ctx context.Context, email string, selfID uint) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(email, "@") || strings.Contains(email, " ") {
		return ErrEmailInvalid
	}
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != selfID {
		return ErrEmailTaken
	}
	return nil
}
