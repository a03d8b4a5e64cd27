package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Product represents a produk record as returned by the backend API
type Product struct {
	ID          FlexInt   `json:"id_produk"`
	Name        string    `json:"nama_produk"`
	Brand       string    `json:"merk_produk"`
	Price       FlexFloat `json:"harga"`
	Stock       FlexInt   `json:"stok"`
	Description *string   `json:"deskripsi_produk,omitempty"` // Pointer for optional field
	Image       string    `json:"gambar_produk"`
	No          int       `json:"-"` // Display number, assigned after sorting
}

// ProductPayload is the JSON body sent to ProdukAPI.php on create and update
type ProductPayload struct {
	ID    *int64  `json:"id_produk,omitempty"` // Only set on update
	Name  string  `json:"nama_produk"`
	Brand string  `json:"merk_produk"`
	Price float64 `json:"harga"`
	Stock int64   `json:"stok"`
}

// DeleteProductRequest is the body of DELETE ProdukAPI.php
type DeleteProductRequest struct {
	ID int64 `json:"id_produk"`
}

// ProductForm is bound from the tambah/edit produk forms.
// Numeric inputs stay strings so an empty field fails "required" instead of becoming 0.
type ProductForm struct {
	Name  string `form:"nama_produk" label:"Nama Produk" binding:"required"`
	Brand string `form:"merk_produk" label:"Merk" binding:"required"`
	Price string `form:"harga" label:"Harga" binding:"required,numeric,positive"`
	Stock string `form:"stok" label:"Stok" binding:"required,integer,nonnegative"`
}

// EditProductForm is looser on harga than ProductForm: it only has to be a number.
type EditProductForm struct {
	Name  string `form:"nama_produk" label:"Nama Produk" binding:"required"`
	Brand string `form:"merk_produk" label:"Merk" binding:"required"`
	Price string `form:"harga" label:"Harga" binding:"required,numeric"`
	Stock string `form:"stok" label:"Stok" binding:"required,integer,nonnegative"`
}

// ProductFormFrom fills a form with the current values of p, used to prefill the edit screen
func ProductFormFrom(p *Product) ProductForm {
	return ProductForm{
		Name:  p.Name,
		Brand: p.Brand,
		Price: strconv.FormatFloat(float64(p.Price), 'f', -1, 64),
		Stock: strconv.FormatInt(int64(p.Stock), 10),
	}
}

// Payload converts a validated form into the backend request body
func (f ProductForm) Payload() (*ProductPayload, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid harga %q: %w", f.Price, err)
	}
	stock, err := strconv.ParseInt(strings.TrimSpace(f.Stock), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid stok %q: %w", f.Stock, err)
	}
	return &ProductPayload{
		Name:  strings.TrimSpace(f.Name),
		Brand: strings.TrimSpace(f.Brand),
		Price: price,
		Stock: stock,
	}, nil
}

// ProductForm drops the edit-only relaxations so both screens share one payload path
func (f EditProductForm) ProductForm() ProductForm {
	return ProductForm{Name: f.Name, Brand: f.Brand, Price: f.Price, Stock: f.Stock}
}
