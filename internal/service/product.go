package service

import (
	"context"

	"github.com/avdeenkov/shopview/internal/models"
)

// ProductRepository defines the catalog reads required by the product
// service.
type ProductRepository interface {
	// List returns the full catalog.
	List(ctx context.Context) ([]models.Product, error)
}

// ProductService exposes catalog listing over a ProductRepository.
type ProductService struct {
	repo ProductRepository
}

// NewProductService constructs a new ProductService using the provided
// repository.
func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns the full catalog.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.List(ctx)
}
