package service

import (
	"errors"

	"penjualan_admin/internal/repository"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrBackendUnavailable = repository.ErrBackendUnavailable
	ErrInvalidResponse    = repository.ErrInvalidResponse
)

// BackendError returns the "error" the backend attached to a rejected request, or "" when there is none
func BackendError(err error) string {
	var apiErr *repository.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Reason
	}
	return ""
}
