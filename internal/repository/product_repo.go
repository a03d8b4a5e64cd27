package repository

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"penjualan_admin/internal/model"
)

// ProductRepository defines operations for produk data held by the backend
type ProductRepository interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	Create(ctx context.Context, p *model.ProductPayload) error
	Update(ctx context.Context, p *model.ProductPayload) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}

type productRepository struct {
	api *APIClient
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(api *APIClient) ProductRepository {
	return &productRepository{api: api}
}

// FindAll lists every product
func (r *productRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.api.do(ctx, http.MethodGet, productEndpoint, nil, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// FindByID returns nil, nil when the backend answers with an empty list
func (r *productRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var products []model.Product
	query := url.Values{"id_produk": {strconv.FormatInt(id, 10)}}
	if err := r.api.do(ctx, http.MethodGet, productEndpoint, query, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if len(products) == 0 {
		return nil, nil // Not found
	}
	return &products[0], nil
}

func (r *productRepository) Create(ctx context.Context, p *model.ProductPayload) error {
	if err := r.api.do(ctx, http.MethodPost, productEndpoint, nil, p, nil); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) Update(ctx context.Context, p *model.ProductPayload) error {
	if p.ID == nil {
		return fmt.Errorf("failed to update product: missing id_produk")
	}
	if err := r.api.do(ctx, http.MethodPut, productEndpoint, nil, p, nil); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	if err := r.api.do(ctx, http.MethodDelete, productEndpoint, nil, model.DeleteProductRequest{ID: id}, nil); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Ping checks that the produk endpoint answers at all
func (r *productRepository) Ping(ctx context.Context) error {
	if err := r.api.do(ctx, http.MethodGet, productEndpoint, nil, nil, nil); err != nil {
		return fmt.Errorf("backend ping failed: %w", err)
	}
	return nil
}
