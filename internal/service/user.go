package service

import (
	"context"
	"errors"
	"strings"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) AddUser(ctx context.Context, name, email string) (*domain.User, error) {
	user := &domain.User{Name: name, Email: email}
	if err := s.validateEmail(ctx, user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, name, email *string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		user.Name = *name
	}
	if email != nil && strings.TrimSpace(*email) != "" {
		user.Email = *email
	}
	if err := s.validateEmail(ctx, user); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// validateEmail requires a non-blank email not used by a different user.
func (s *userService) validateEmail(ctx context.Context, user *domain.User) error {
	if strings.TrimSpace(user.Email) == "" {
		return domain.Validationf("user email must not be blank")
	}
	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != user.ID {
		return domain.Conflictf("email already in use: %s", user.Email)
	}
	return nil
}
