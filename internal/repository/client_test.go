package repository

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake backend saw
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]interface{}
}

// newFakeBackend starts a server that records each request and answers with status/body
func newFakeBackend(t *testing.T, status int, body string) (*APIClient, *[]recordedRequest) {
	t.Helper()
	logger.SetOutput(io.Discard)

	var seen []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		seen = append(seen, rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return NewAPIClient(srv.URL+"/backend-penjualan/", 2*time.Second), &seen
}

func TestAPIClient_TrimsTrailingSlash(t *testing.T) {
	api := NewAPIClient("http://localhost/backend-penjualan/", time.Second)
	assert.Equal(t, "http://localhost/backend-penjualan", api.BaseURL)
	assert.Equal(t, time.Second, api.HTTPClient.Timeout)
}

func TestAPIClient_Non2xxBecomesAPIError(t *testing.T) {
	api, _ := newFakeBackend(t, http.StatusBadRequest, `{"error":"Email sudah terdaftar"}`)

	err := api.do(context.Background(), http.MethodPost, userEndpoint, nil, map[string]string{"a": "b"}, nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Email sudah terdaftar", apiErr.Reason)
	assert.Empty(t, apiErr.Message)
	assert.False(t, apiErr.Malformed)
	assert.Contains(t, apiErr.Error(), "400")
}

func TestAPIClient_Non2xxKeepsBothBodyFields(t *testing.T) {
	api, _ := newFakeBackend(t, http.StatusUnauthorized, `{"message":"Password salah","error":"Unauthorized"}`)

	err := api.do(context.Background(), http.MethodPost, adminLoginEndpoint, nil, nil, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Password salah", apiErr.Message)
	assert.Equal(t, "Unauthorized", apiErr.Reason)
	assert.Equal(t, "backend returned status 401 - Unauthorized", apiErr.Error())
	assert.NotErrorIs(t, err, ErrInvalidResponse)
}

func TestAPIClient_Non2xxMessageOnly(t *testing.T) {
	api, _ := newFakeBackend(t, http.StatusUnauthorized, `{"message":"Invalid password"}`)

	err := api.do(context.Background(), http.MethodPost, adminLoginEndpoint, nil, nil, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Invalid password", apiErr.Message)
	assert.Empty(t, apiErr.Reason)
	assert.Contains(t, apiErr.Error(), "Invalid password")
}

func TestAPIClient_NonJSONErrorBodyKeepsStatus(t *testing.T) {
	api, _ := newFakeBackend(t, http.StatusInternalServerError, `<b>Fatal error</b>`)

	err := api.do(context.Background(), http.MethodGet, productEndpoint, nil, nil, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	assert.True(t, apiErr.Malformed)
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, "backend returned status 500", apiErr.Error())
}

func TestAPIClient_SendReportsStatus(t *testing.T) {
	api, _ := newFakeBackend(t, http.StatusCreated, `{"message":"ok"}`)

	var msg apiMessage
	status, err := api.send(context.Background(), http.MethodPost, userEndpoint, nil, nil, &msg)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "ok", msg.Message)
}

func TestAPIClient_UnreachableBackend(t *testing.T) {
	logger.SetOutput(io.Discard)
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	api := NewAPIClient(baseURL, time.Second)
	err := api.do(context.Background(), http.MethodGet, productEndpoint, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
}

func TestAPIClient_InvalidJSONOnSuccess(t *testing.T) {
	api, _ := newFakeBackend(t, http.StatusOK, `not json`)

	var out []model.Product
	err := api.do(context.Background(), http.MethodGet, productEndpoint, nil, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
