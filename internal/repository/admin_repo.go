package repository

import (
	"context"
	"fmt"
	"net/http"

	"penjualan_admin/internal/model"
)

// AdminRepository checks admin credentials against the backend
type AdminRepository interface {
	Login(ctx context.Context, email, password string) (*model.AdminLoginResponse, error)
}

type adminRepository struct {
	api *APIClient
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(api *APIClient) AdminRepository {
	return &adminRepository{api: api}
}

// Login returns the backend reply for a 2xx answer, the caller decides whether its message means success
func (r *adminRepository) Login(ctx context.Context, email, password string) (*model.AdminLoginResponse, error) {
	req := model.AdminLoginRequest{Email: email, Password: password}
	var resp model.AdminLoginResponse
	if err := r.api.do(ctx, http.MethodPost, adminLoginEndpoint, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("admin login request failed: %w", err)
	}
	return &resp, nil
}
