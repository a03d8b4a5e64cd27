package service

import (
	"context"
	"errors"
	"fmt"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/model"
	"penjualan_admin/internal/repository"
	"penjualan_admin/internal/utils"
)

const (
	msgLoginFailed        = "Login Gagal"
	msgInvalidCredentials = "Email atau password tidak valid"
)

// LoginError is an explicit rejection from the backend; Message is safe to show the admin
type LoginError struct {
	Message string
}

func (e *LoginError) Error() string {
	return e.Message
}

func (e *LoginError) Unwrap() error {
	return ErrInvalidCredentials
}

// AuthService provides admin authentication
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.Admin, string, error)
}

type authService struct {
	adminRepo repository.AdminRepository
	jwtUtil   *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo repository.AdminRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{
		adminRepo: adminRepo,
		jwtUtil:   jwtUtil,
	}
}

// Login checks the credentials with the backend and returns a session token
func (s *authService) Login(ctx context.Context, email, password string) (*model.Admin, string, error) {
	resp, err := s.adminRepo.Login(ctx, email, password)
	if err != nil {
		var apiErr *repository.APIError
		if errors.As(err, &apiErr) && !apiErr.Malformed {
			msg := apiErr.Message
			if msg == "" {
				msg = msgInvalidCredentials
			}
			return nil, "", &LoginError{Message: msg}
		}
		return nil, "", fmt.Errorf("error checking admin credentials: %w", err)
	}

	if resp.Message != model.LoginSuccessMessage {
		msg := resp.Message
		if msg == "" {
			msg = msgLoginFailed
		}
		return nil, "", &LoginError{Message: msg}
	}

	admin := &model.Admin{Email: email, Role: model.RoleAdmin}
	token, err := s.jwtUtil.GenerateToken(admin.Email, admin.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("admin %s logged in", admin.Email)
	return admin, token, nil
}
