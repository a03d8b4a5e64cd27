package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"penjualan_admin/internal/logger"
)

const (
	productEndpoint    = "ProdukAPI.php"
	userEndpoint       = "UserAPI.php"
	adminLoginEndpoint = "AdminLoginAPI.php/login"
)

var (
	// ErrBackendUnavailable is returned when the backend could not be reached at all
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrInvalidResponse is returned when the backend replied with a body that is not JSON
	ErrInvalidResponse = errors.New("invalid backend response")
)

// APIError is a response from the backend that was not accepted.
// Callers pick the body field they show: login reads Message, the
// create and delete screens read Reason.
type APIError struct {
	StatusCode int
	Message    string // "message" from the body
	Reason     string // "error" from the body
	Malformed  bool   // the body could not be decoded
}

func (e *APIError) Error() string {
	text := e.Reason
	if text == "" {
		text = e.Message
	}
	if text == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d - %s", e.StatusCode, text)
}

func (e *APIError) Unwrap() error {
	if e.Malformed {
		return ErrInvalidResponse
	}
	return nil
}

// apiMessage is the envelope the backend uses for non-list replies
type apiMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// APIClient talks JSON to the PHP backend
type APIClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewAPIClient creates a client rooted at baseURL (e.g. http://localhost/backend-penjualan)
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// do sends payload (if any) as JSON and decodes a 2xx body into out (if any).
// Non-2xx responses become *APIError, transport failures wrap ErrBackendUnavailable.
func (c *APIClient) do(ctx context.Context, method, endpoint string, query url.Values, payload, out interface{}) error {
	_, err := c.send(ctx, method, endpoint, query, payload, out)
	return err
}

// send is do that also reports the status code of an accepted reply
func (c *APIClient) send(ctx context.Context, method, endpoint string, query url.Values, payload, out interface{}) (int, error) {
	reqURL := c.BaseURL + "/" + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			return 0, fmt.Errorf("failed to marshal %s %s request: %w", method, endpoint, err)
		}
		body = bytes.NewBuffer(jsonPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s %s request: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error(fmt.Sprintf("APIClient: %s %s failed", method, endpoint), err)
		return 0, fmt.Errorf("%w: %s %s: %w", ErrBackendUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read %s %s response: %w", method, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg apiMessage
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, &msg); err != nil {
			apiErr.Malformed = true
		} else {
			apiErr.Message, apiErr.Reason = msg.Message, msg.Error
		}
		logger.Error(fmt.Sprintf("APIClient: %s %s rejected", method, endpoint), apiErr)
		return resp.StatusCode, apiErr
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: failed to decode %s %s response: %w", ErrInvalidResponse, method, endpoint, err)
	}
	return resp.StatusCode, nil
}

// confirmed treats a 2xx reply as successful only when it carries a "message"
func confirmed(statusCode int, msg apiMessage) error {
	if msg.Message == "" {
		return &APIError{StatusCode: statusCode, Reason: msg.Error}
	}
	return nil
}
