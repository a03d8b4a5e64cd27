package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/model"
	"penjualan_admin/internal/repository"
	"penjualan_admin/internal/repository/mocks"
	"penjualan_admin/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (AuthService, *mocks.MockAdminRepository, *utils.JWTUtil) {
	t.Helper()
	logger.SetOutput(io.Discard)
	repo := new(mocks.MockAdminRepository)
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	return NewAuthService(repo, jwtUtil), repo, jwtUtil
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, jwtUtil := newAuthService(t)
	repo.On("Login", mock.Anything, "admin@toko.id", "secret").
		Return(&model.AdminLoginResponse{Message: model.LoginSuccessMessage}, nil)

	admin, token, err := svc.Login(context.Background(), "admin@toko.id", "secret")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@toko.id", claims.Email)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		resp    *model.AdminLoginResponse
		repoErr error
		wantMsg string
	}{
		{"2xx with other message", &model.AdminLoginResponse{Message: "Wrong password"}, nil, "Wrong password"},
		{"2xx without message", &model.AdminLoginResponse{}, nil, "Login Gagal"},
		{"401 with message", nil, fmt.Errorf("wrapped: %w", &repository.APIError{StatusCode: 401, Message: "Invalid credentials"}), "Invalid credentials"},
		{"401 without message", nil, &repository.APIError{StatusCode: 401}, "Email atau password tidak valid"},
		{"401 shows message over error", nil, &repository.APIError{StatusCode: 401, Message: "Password salah", Reason: "Unauthorized"}, "Password salah"},
		{"401 with only error", nil, &repository.APIError{StatusCode: 401, Reason: "Unauthorized"}, "Email atau password tidak valid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newAuthService(t)
			repo.On("Login", mock.Anything, "a@b.c", "x").Return(tt.resp, tt.repoErr)

			_, token, err := svc.Login(context.Background(), "a@b.c", "x")
			require.Error(t, err)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, ErrInvalidCredentials)

			var loginErr *LoginError
			require.True(t, errors.As(err, &loginErr))
			assert.Equal(t, tt.wantMsg, loginErr.Message)
		})
	}
}

func TestAuthService_Login_BackendDown(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	repo.On("Login", mock.Anything, "a@b.c", "x").
		Return(nil, fmt.Errorf("%w: POST login: dial tcp", repository.ErrBackendUnavailable))

	_, _, err := svc.Login(context.Background(), "a@b.c", "x")
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

func TestAuthService_Login_MalformedRejection(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	repo.On("Login", mock.Anything, "a@b.c", "x").
		Return(nil, fmt.Errorf("admin login request failed: %w", &repository.APIError{StatusCode: 500, Malformed: true}))

	_, token, err := svc.Login(context.Background(), "a@b.c", "x")
	require.Error(t, err)
	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))

	var loginErr *LoginError
	assert.False(t, errors.As(err, &loginErr))
}
