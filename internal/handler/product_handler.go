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
	productListPath     = "/admin/daftar-produk"
	productsTemplate    = "products.tmpl"
	productFormTemplate = "product_form.tmpl"
)

// ProductHandler serves the produk screens
type ProductHandler struct {
	service         service.ProductService
	view            *View
	defaultPageSize int
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService, view *View, defaultPageSize int) *ProductHandler {
	registerValidators()
	return &ProductHandler{service: s, view: view, defaultPageSize: defaultPageSize}
}

// ListProducts renders one page of the produk table
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.service.ListProducts(c.Request.Context())
	if err != nil {
		logger.Error("Error listing products", err)
		h.view.Flash(c, utils.ErrorFlash("Failed to fetch products"))
		products = nil
	}

	p := utils.Paginate(len(products), intOr(c.Query("page"), 1), intOr(c.Query("per_page"), h.defaultPageSize))
	h.view.Render(c, http.StatusOK, productsTemplate, gin.H{
		"Title":      "Daftar Produk",
		"Nav":        "produk",
		"Products":   utils.PageSlice(products, p),
		"Pagination": p,
	})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	back := listURL(productListPath, c.PostForm("page"), c.PostForm("per_page"))

	id, ok := parseID(c.PostForm("id_produk"))
	if !ok {
		h.view.Flash(c, utils.ErrorFlash("Failed to delete product"))
		h.view.Redirect(c, back)
		return
	}

	if err := h.service.DeleteProduct(c.Request.Context(), id); err != nil {
		logger.Error("Error deleting product %d", err, id)
		h.view.Flash(c, utils.ErrorFlash("Failed to delete product"))
		h.view.Redirect(c, back)
		return
	}
	h.view.Flash(c, utils.SuccessFlash("Product has been deleted successfully"))
	h.view.Redirect(c, back)
}

func (h *ProductHandler) NewProduct(c *gin.Context) {
	h.renderForm(c, http.StatusOK, gin.H{"Form": model.ProductForm{}})
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var form model.ProductForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, gin.H{"Form": form, "Errors": utils.ValidationMessages(err, &form)})
		return
	}

	if err := h.service.CreateProduct(c.Request.Context(), form); err != nil {
		logger.Error("Error creating product", err)
		h.view.Flash(c, utils.ErrorFlash(backendErrorOr(err, "An error occurred while adding the product.")))
		h.renderForm(c, failureStatus(err), gin.H{"Form": form})
		return
	}
	h.view.Flash(c, utils.SuccessFlash("Product has been added successfully."))
	h.view.Redirect(c, productListPath)
}

func (h *ProductHandler) EditProduct(c *gin.Context) {
	id, ok := parseID(c.Query("id_produk"))
	if !ok {
		h.renderNotFound(c, http.StatusNotFound)
		return
	}

	product, err := h.service.GetProduct(c.Request.Context(), id)
	if err != nil {
		status := http.StatusNotFound
		if !errors.Is(err, service.ErrProductNotFound) {
			logger.Error("Error fetching product %d", err, id)
			status = failureStatus(err)
		}
		h.renderNotFound(c, status)
		return
	}

	h.renderForm(c, http.StatusOK, gin.H{"ID": id, "Form": model.ProductFormFrom(product)})
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c.Query("id_produk"))
	if !ok {
		h.renderNotFound(c, http.StatusNotFound)
		return
	}

	var edit model.EditProductForm
	if err := c.ShouldBind(&edit); err != nil {
		h.renderForm(c, http.StatusUnprocessableEntity, gin.H{"ID": id, "Form": edit.ProductForm(), "Errors": utils.ValidationMessages(err, &edit)})
		return
	}

	form := edit.ProductForm()
	if err := h.service.UpdateProduct(c.Request.Context(), id, form); err != nil {
		logger.Error("Error updating product %d", err, id)
		h.view.Flash(c, utils.ErrorFlash("Failed to update product"))
		h.renderForm(c, failureStatus(err), gin.H{"ID": id, "Form": form})
		return
	}
	h.view.Flash(c, utils.SuccessFlash("Product has been updated successfully"))
	h.view.Redirect(c, productListPath)
}

// renderForm shows the tambah form, or the edit form when data carries an "ID"
func (h *ProductHandler) renderForm(c *gin.Context, status int, data gin.H) {
	data["Nav"] = "produk"
	data["Title"] = "Tambah Produk"
	data["Action"] = productListPath + "/tambah"
	if id, ok := data["ID"].(int64); ok {
		data["Title"] = "Edit Produk"
		data["Action"] = productListPath + "/edit?id_produk=" + strconv.FormatInt(id, 10)
		data["IsEdit"] = true
	}
	h.view.Render(c, status, productFormTemplate, data)
}

func (h *ProductHandler) renderNotFound(c *gin.Context, status int) {
	h.view.Flash(c, utils.ErrorFlash("Failed to fetch product"))
	h.view.Render(c, status, productFormTemplate, gin.H{
		"Title":    "Edit Produk",
		"Nav":      "produk",
		"IsEdit":   true,
		"NotFound": true,
	})
}

// RegisterProductRoutes registers the produk screens behind the session and admin checks
func (h *ProductHandler) RegisterProductRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, adminMW gin.HandlerFunc) {
	productRoutes := rg.Group("/admin/daftar-produk")
	productRoutes.Use(authMW)
	productRoutes.Use(adminMW)
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.POST("/delete", h.DeleteProduct)
		productRoutes.GET("/tambah", h.NewProduct)
		productRoutes.POST("/tambah", h.CreateProduct)
		productRoutes.GET("/edit", h.EditProduct)
		productRoutes.POST("/edit", h.UpdateProduct)
	}
}
