package handler

import (
	"errors"
	"net/http"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/middleware"
	"penjualan_admin/internal/model"
	"penjualan_admin/internal/service"
	"penjualan_admin/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	loginTemplate = "login.tmpl"
	homePath      = "/admin/daftar-produk"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	service      service.AuthService
	jwtUtil      *utils.JWTUtil
	view         *View
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, jwtUtil *utils.JWTUtil, view *View, secureCookie bool) *AuthHandler {
	registerValidators()
	return &AuthHandler{service: s, jwtUtil: jwtUtil, view: view, secureCookie: secureCookie}
}

// ShowLogin renders the login form, or skips it when the session is still valid
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookieName); err == nil && token != "" {
		if _, err := h.jwtUtil.ValidateToken(token); err == nil {
			h.view.Redirect(c, homePath)
			return
		}
	}
	h.renderLogin(c, http.StatusOK, model.LoginForm{}, nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form model.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderLogin(c, http.StatusUnprocessableEntity, form, utils.ValidationMessages(err, &form))
		return
	}

	admin, token, err := h.service.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		var loginErr *service.LoginError
		if errors.As(err, &loginErr) {
			h.view.Flash(c, utils.ErrorFlash(loginErr.Message))
			h.renderLogin(c, http.StatusUnauthorized, model.LoginForm{Email: form.Email}, nil)
			return
		}
		logger.Error("Error during login", err)
		h.view.Flash(c, utils.ErrorFlash("Terjadi kesalahan saat login"))
		h.renderLogin(c, failureStatus(err), model.LoginForm{Email: form.Email}, nil)
		return
	}

	utils.SetCookie(c, middleware.SessionCookieName, token, h.jwtUtil.MaxAge(), h.secureCookie)
	h.view.Flash(c, utils.SuccessFlash("Login Berhasil"))
	logger.Info("session started for %s", admin.Email)
	h.view.Redirect(c, homePath)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.SetCookie(c, middleware.SessionCookieName, "", -1, h.secureCookie)
	h.view.Flash(c, utils.InfoFlash("Logout", "Anda telah keluar"))
	h.view.Redirect(c, "/")
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form model.LoginForm, errs map[string]string) {
	data := gin.H{"Title": "Login Admin", "Form": form}
	if errs != nil {
		data["Errors"] = errs
	}
	h.view.Render(c, status, loginTemplate, data)
}

// RegisterAuthRoutes registers login and logout routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.ShowLogin)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
}
