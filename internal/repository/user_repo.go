package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"penjualan_admin/internal/model"
)

// UserRepository defines operations for user data held by the backend
type UserRepository interface {
	FindAll(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, u *model.UserPayload) error
	Update(ctx context.Context, u *model.UserPayload) error
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	api *APIClient
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(api *APIClient) UserRepository {
	return &userRepository{api: api}
}

// FindAll lists every user account
func (r *userRepository) FindAll(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.api.do(ctx, http.MethodGet, userEndpoint, nil, nil, &users); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// FindByID retrieves a user by their ID, nil when the backend returns nothing
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var users []model.User
	query := url.Values{"id_user": {strconv.FormatInt(id, 10)}}
	if err := r.api.do(ctx, http.MethodGet, userEndpoint, query, nil, &users); err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	if len(users) == 0 {
		return nil, nil // User not found
	}
	return &users[0], nil
}

// Create registers a new regular-level user
func (r *userRepository) Create(ctx context.Context, u *model.UserPayload) error {
	u.Register = true
	if err := r.api.do(ctx, http.MethodPost, userEndpoint, nil, u, nil); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update needs both a 2xx status and a "message" in the reply
func (r *userRepository) Update(ctx context.Context, u *model.UserPayload) error {
	if u.ID == nil {
		return fmt.Errorf("failed to update user: missing id_user")
	}
	var msg apiMessage
	status, err := r.api.send(ctx, http.MethodPut, userEndpoint, nil, u, &msg)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if err := confirmed(status, msg); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete needs both a 2xx status and a "message" in the reply
func (r *userRepository) Delete(ctx context.Context, id int64) error {
	var msg apiMessage
	status, err := r.api.send(ctx, http.MethodDelete, userEndpoint, nil, model.DeleteUserRequest{ID: id}, &msg)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := confirmed(status, msg); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
