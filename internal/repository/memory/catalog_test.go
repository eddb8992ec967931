package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Name: "Wireless Headphones", PriceCents: 9999, Image: "https://img.example.com/1.jpg"},
		{ID: "2", Name: "Smart Watch", PriceCents: 2499, Image: "https://img.example.com/2.jpg"},
	}
}

func TestCatalogSeedAndList(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, sampleProducts()))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
	assert.Equal(t, "2", products[1].ID)
}

func TestCatalogSeed_Idempotent(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, sampleProducts()))
	require.NoError(t, repo.Seed(ctx, sampleProducts()))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestCatalogGetByID_Success(t *testing.T) {
	repo := NewProductRepository()
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx, sampleProducts()))

	p, err := repo.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Smart Watch", p.Name)
	assert.Equal(t, int64(2499), p.PriceCents)
}

func TestCatalogGetByID_NotFound(t *testing.T) {
	repo := NewProductRepository()

	p, err := repo.GetByID(context.Background(), "999")

	assert.Nil(t, p)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
