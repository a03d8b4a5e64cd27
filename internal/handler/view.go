package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/middleware"
	"penjualan_admin/internal/service"
	"penjualan_admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// View renders pages with the data every screen shares: the admin, pending toasts and field errors
type View struct {
	flashes *utils.FlashStore
}

// NewView creates a View backed by the given flash store
func NewView(flashes *utils.FlashStore) *View {
	return &View{flashes: flashes}
}

// Flash queues a toast for the page rendered (or redirected to) next
func (v *View) Flash(c *gin.Context, f utils.Flash) {
	v.flashes.Push(c, f)
}

// Render executes the named template. data may be nil.
func (v *View) Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	if _, ok := data["Nav"]; !ok {
		data["Nav"] = ""
	}
	data["Admin"] = c.GetString(middleware.AuthAdminKey)
	data["RequestID"] = c.GetString(middleware.RequestIDKey)
	data["Flashes"] = v.flashes.Consume(c)
	c.HTML(status, name, data)
}

// Redirect carries queued toasts over to location (303 so a POST becomes a GET)
func (v *View) Redirect(c *gin.Context, location string) {
	v.flashes.Persist(c)
	c.Redirect(http.StatusSeeOther, location)
}

// registerValidators installs the form rules, a failure leaves those rules unchecked
func registerValidators() {
	if err := utils.RegisterValidators(); err != nil {
		logger.Error("Failed to register form validators", err)
	}
}

// failureStatus picks the status for a page re-rendered after a backend call failed
func failureStatus(err error) int {
	if errors.Is(err, service.ErrBackendUnavailable) || errors.Is(err, service.ErrInvalidResponse) {
		return http.StatusBadGateway
	}
	return http.StatusUnprocessableEntity
}

// backendErrorOr prefers the "error" the backend sent with err over fallback
func backendErrorOr(err error, fallback string) string {
	if msg := service.BackendError(err); msg != "" {
		return msg
	}
	return fallback
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func intOr(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// listURL rebuilds a table link keeping the page the admin was on
func listURL(base, page, perPage string) string {
	q := url.Values{}
	if _, err := strconv.Atoi(page); err == nil {
		q.Set("page", page)
	}
	if _, err := strconv.Atoi(perPage); err == nil {
		q.Set("per_page", perPage)
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}
