package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"penjualan_admin/internal/model"
	"penjualan_admin/internal/repository"
)

// ProductService defines operations on produk
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	CreateProduct(ctx context.Context, form model.ProductForm) error
	UpdateProduct(ctx context.Context, id int64, form model.ProductForm) error
	DeleteProduct(ctx context.Context, id int64) error
	CheckBackend(ctx context.Context) error
}

type productService struct {
	repo         repository.ProductRepository
	imageBaseURL string
}

// NewProductService creates a new ProductService. Image paths are rewritten relative to imageBaseURL.
func NewProductService(repo repository.ProductRepository, imageBaseURL string) ProductService {
	return &productService{repo: repo, imageBaseURL: imageBaseURL}
}

// ResolveImageURL keeps only the file name of raw and appends it to base
func ResolveImageURL(base, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	name := raw[strings.LastIndex(raw, "/")+1:]
	if name == "" {
		return ""
	}
	return base + name
}

// ListProducts returns every product sorted by id, numbered from 1, with absolute image URLs
func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products from repo: %w", err)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].ID < products[j].ID
	})
	for i := range products {
		products[i].Image = ResolveImageURL(s.imageBaseURL, products[i].Image)
		products[i].No = i + 1
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	product.Image = ResolveImageURL(s.imageBaseURL, product.Image)
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, form model.ProductForm) error {
	payload, err := form.Payload()
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, payload); err != nil {
		return fmt.Errorf("failed to create product in repo: %w", err)
	}
	return nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, form model.ProductForm) error {
	payload, err := form.Payload()
	if err != nil {
		return err
	}
	payload.ID = &id
	if err := s.repo.Update(ctx, payload); err != nil {
		return fmt.Errorf("failed to update product in repo: %w", err)
	}
	return nil
}

func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product in repo: %w", err)
	}
	return nil
}

// CheckBackend reports whether the backend answers, used by the health endpoint
func (s *productService) CheckBackend(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
