package service

import (
	"context"
	"fmt"

	"penjualan_admin/internal/model"
	"penjualan_admin/internal/repository"
)

// UserService defines operations on user accounts
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	CreateUser(ctx context.Context, form model.UserForm) error
	UpdateUser(ctx context.Context, id int64, form model.UserForm) error
	DeleteUser(ctx context.Context, id int64) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// ListUsers keeps the backend order and numbers rows from 1
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users from repo: %w", err)
	}
	for i := range users {
		users[i].No = i + 1
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, form model.UserForm) error {
	if err := s.repo.Create(ctx, form.Payload()); err != nil {
		return fmt.Errorf("failed to create user in repo: %w", err)
	}
	return nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, form model.UserForm) error {
	payload := form.Payload()
	payload.ID = &id
	if err := s.repo.Update(ctx, payload); err != nil {
		return fmt.Errorf("failed to update user in repo: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user in repo: %w", err)
	}
	return nil
}
