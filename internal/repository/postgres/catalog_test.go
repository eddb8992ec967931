package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sakethreddy10/Mock-E-Commerce-Cart/pkg/errors"
	"github.com/sakethreddy10/Mock-E-Commerce-Cart/internal/domain"
)

var productColumns = []string{"id", "name", "price_cents", "image"}

func sampleProduct() domain.Product {
	return domain.Product{
		ID:         "1",
		Name:       "Wireless Headphones",
		PriceCents: 9999,
		Image:      "https://img.example.com/1.jpg",
	}
}

func TestProductRepository_Seed(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectExec("INSERT INTO products").
		WithArgs(p.ID, p.Name, p.PriceCents, p.Image).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.Seed(context.Background(), []domain.Product{p})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_Seed_AlreadyPresent(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	// ON CONFLICT DO NOTHING reports zero rows affected; that is not an error.
	mock.ExpectExec("INSERT INTO products").
		WithArgs(p.ID, p.Name, p.PriceCents, p.Image).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := repo.Seed(context.Background(), []domain.Product{p})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_List(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectQuery("SELECT id, name, price_cents, image FROM products").
		WillReturnRows(
			pgxmock.NewRows(productColumns).
				AddRow(p.ID, p.Name, p.PriceCents, p.Image).
				AddRow("2", "Smart Watch", int64(2499), "https://img.example.com/2.jpg"),
		)

	products, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Wireless Headphones", products[0].Name)
	assert.Equal(t, int64(2499), products[1].PriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	p := sampleProduct()
	mock.ExpectQuery("SELECT id, name, price_cents, image FROM products WHERE id").
		WithArgs(p.ID).
		WillReturnRows(
			pgxmock.NewRows(productColumns).AddRow(p.ID, p.Name, p.PriceCents, p.Image),
		)

	result, err := repo.GetByID(context.Background(), p.ID)

	require.NoError(t, err)
	assert.Equal(t, p, *result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	repo := NewProductRepository(mock)

	mock.ExpectQuery("SELECT id, name, price_cents, image FROM products WHERE id").
		WithArgs("999").
		WillReturnError(pgx.ErrNoRows)

	result, err := repo.GetByID(context.Background(), "999")

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
