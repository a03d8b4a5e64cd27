package handler

import (
	"errors"
	"net/http"
	"strconv"

	"penjualan_admin/internal/logger"
	"penjualan_admin/internal/model"
	"penjualan_admin/internal/service"
	"penjualan_admin/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	userListPath     = "/admin/daftar-user"
	usersTemplate    = "users.tmpl"
	userFormTemplate = "user_form.tmpl"
)

// UserHandler serves the user account screens
type UserHandler struct {
	service         service.UserService
	view            *View
	defaultPageSize int
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, view *View, defaultPageSize int) *UserHandler {
	registerValidators()
	return &UserHandler{service: s, view: view, defaultPageSize: defaultPageSize}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		logger.Error("Error listing users", err)
		h.view.Flash(c, utils.ErrorFlash("Failed to fetch users"))
		users = nil
	}

	p := utils.Paginate(len(users), intOr(c.Query("page"), 1), intOr(c.Query("per_page"), h.defaultPageSize))
	h.view.Render(c, http.StatusOK, usersTemplate, gin.H{
		"Title":      "Daftar User",
		"Nav":        "user",
		"Users":      utils.PageSlice(users, p),
		"Pagination": p,
	})
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	back := listURL(userListPath, c.PostForm("page"), c.PostForm("per_page"))

	id, ok := parseID(c.PostForm("id_user"))
	if !ok {
		h.view.Flash(c, utils.ErrorFlash("Failed to delete user"))
		h.view.Redirect(c, back)
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		logger.Error("Error deleting user %d", err, id)
		h.view.Flash(c, utils.ErrorFlash(backendErrorOr(err, "Failed to delete user")))
		h.view.Redirect(c, back)
		return
	}
	h.view.Flash(c, utils.SuccessFlash("User deleted successfully"))
	h.view.Redirect(c, back)
}

func (h *UserHandler) NewUser(c *gin.Context) {
	h.renderForm(c, http.StatusOK, gin.H{"Form": model.UserForm{}})
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var form model.UserForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, gin.H{"Form": form, "Errors": utils.ValidationMessages(err, &form)})
		return
	}

	if err := h.service.CreateUser(c.Request.Context(), form); err != nil {
		logger.Error("Error creating user", err)
		h.view.Flash(c, utils.ErrorFlash(backendErrorOr(err, "An error occurred while adding the user.")))
		h.renderForm(c, failureStatus(err), gin.H{"Form": form})
		return
	}
	h.view.Flash(c, utils.SuccessFlash("User has been added successfully."))
	h.view.Redirect(c, userListPath)
}

func (h *UserHandler) EditUser(c *gin.Context) {
	id, ok := parseID(c.Query("id_user"))
	if !ok {
		h.renderNotFound(c, http.StatusNotFound)
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		status := http.StatusNotFound
		if !errors.Is(err, service.ErrUserNotFound) {
			logger.Error("Error fetching user %d", err, id)
			status = failureStatus(err)
		}
		h.renderNotFound(c, status)
		return
	}

	h.renderForm(c, http.StatusOK, gin.H{"ID": id, "Form": model.UserFormFrom(user)})
}

// UpdateUser stays on the edit screen after saving
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c.Query("id_user"))
	if !ok {
		h.renderNotFound(c, http.StatusNotFound)
		return
	}

	var form model.UserForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, gin.H{"ID": id, "Form": form, "Errors": utils.ValidationMessages(err, &form)})
		return
	}

	if err := h.service.UpdateUser(c.Request.Context(), id, form); err != nil {
		logger.Error("Error updating user %d", err, id)
		h.view.Flash(c, utils.ErrorFlash("Failed to update user"))
		h.renderForm(c, failureStatus(err), gin.H{"ID": id, "Form": form})
		return
	}
	h.view.Flash(c, utils.SuccessFlash("User updated successfully"))
	h.view.Redirect(c, editUserPath(id))
}

func editUserPath(id int64) string {
	return userListPath + "/edit?id_user=" + strconv.FormatInt(id, 10)
}

func (h *UserHandler) renderForm(c *gin.Context, status int, data gin.H) {
	data["Nav"] = "user"
	data["Title"] = "Tambah User"
	data["Action"] = userListPath + "/tambah"
	if id, ok := data["ID"].(int64); ok {
		data["Title"] = "Edit User"
		data["Action"] = editUserPath(id)
		data["IsEdit"] = true
	}
	h.view.Render(c, status, userFormTemplate, data)
}

func (h *UserHandler) renderNotFound(c *gin.Context, status int) {
	h.view.Flash(c, utils.ErrorFlash("Failed to fetch user"))
	h.view.Render(c, status, userFormTemplate, gin.H{
		"Title":    "Edit User",
		"Nav":      "user",
		"IsEdit":   true,
		"NotFound": true,
	})
}

// RegisterUserRoutes registers the user screens behind the session and admin checks
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	userRoutes := rg.Group("/admin/daftar-user")
	userRoutes.Use(authMW)
	userRoutes.Use(adminMW)
	{
		userRoutes.GET("", h.ListUsers)
		userRoutes.POST("/delete", h.DeleteUser)
		userRoutes.GET("/tambah", h.NewUser)
		userRoutes.POST("/tambah", h.CreateUser)
		userRoutes.GET("/edit", h.EditUser)
		userRoutes.POST("/edit", h.UpdateUser)
	}
}
