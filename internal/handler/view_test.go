package handler

import (
	"fmt"
	"net/http"
	"testing"

	"penjualan_admin/internal/repository"
	"penjualan_admin/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestListURL(t *testing.T) {
	assert.Equal(t, "/admin/daftar-produk", listURL("/admin/daftar-produk", "", ""))
	assert.Equal(t, "/admin/daftar-produk?page=3", listURL("/admin/daftar-produk", "3", "x"))
	assert.Equal(t, "/admin/daftar-user?page=1&per_page=20", listURL("/admin/daftar-user", "1", "20"))
}

func TestParseID(t *testing.T) {
	id, ok := parseID("12")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, ok := parseID(raw)
		assert.False(t, ok, raw)
	}
}

func TestFailureStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, failureStatus(fmt.Errorf("x: %w", service.ErrBackendUnavailable)))
	assert.Equal(t, http.StatusBadGateway, failureStatus(&repository.APIError{StatusCode: 500, Malformed: true}))
	assert.Equal(t, http.StatusUnprocessableEntity, failureStatus(&repository.APIError{StatusCode: 400}))
}

func TestBackendErrorOr(t *testing.T) {
	assert.Equal(t, "dup", backendErrorOr(&repository.APIError{StatusCode: 400, Reason: "dup"}, "fallback"))
	assert.Equal(t, "dup", backendErrorOr(&repository.APIError{StatusCode: 400, Message: "Bad Request", Reason: "dup"}, "fallback"))
	assert.Equal(t, "fallback", backendErrorOr(&repository.APIError{StatusCode: 400, Message: "Bad Request"}, "fallback"))
	assert.Equal(t, "fallback", backendErrorOr(service.ErrBackendUnavailable, "fallback"))
}
