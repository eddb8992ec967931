package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/repository"
)

// CatalogService serves the read-only product catalog.
type CatalogService struct {
	repo   repository.ProductRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.ProductRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns all seeded products.
func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
