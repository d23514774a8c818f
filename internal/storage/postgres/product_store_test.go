package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-panel/internal/domain"
	"investment-panel/internal/storage"
)

func TestProductStore_InsertAndGetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewProductStore(pool)
	ctx := context.Background()

	product := &domain.Product{
		ProductID:       "prod-001",
		Name:            "CDB Plus",
		Type:            domain.ProductTypeCD,
		AnnualYieldRate: 0.11,
		RiskLevel:       domain.RiskLevelMedium,
		Liquidity:       "daily",
		Taxation:        "regressive",
		Guarantee:       "FGC",
		Description:     "bank certificate",
	}

	require.NoError(t, store.Insert(ctx, product))

	retrieved, err := store.GetByID(ctx, "prod-001")
	require.NoError(t, err)

	assert.Equal(t, product.Name, retrieved.Name)
	assert.Equal(t, product.Type, retrieved.Type)
	assert.Equal(t, product.AnnualYieldRate, retrieved.AnnualYieldRate)
	assert.Equal(t, product.RiskLevel, retrieved.RiskLevel)
	assert.Equal(t, product.Liquidity, retrieved.Liquidity)
}

func TestProductStore_InsertDuplicate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewProductStore(pool)
	ctx := context.Background()

	product := &domain.Product{
		ProductID: "prod-dup",
		Name:      "CDB Plus",
		Type:      domain.ProductTypeCD,
		RiskLevel: domain.RiskLevelLow,
	}

	require.NoError(t, store.Insert(ctx, product))
	assert.ErrorIs(t, store.Insert(ctx, product), storage.ErrDuplicateKey)
}

func TestProductStore_GetByTypeFirstInCatalogOrder(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewProductStore(pool)
	ctx := context.Background()

	products := []*domain.Product{
		{ProductID: "prod-z", Name: "Zeta CDB", Type: domain.ProductTypeCD, RiskLevel: domain.RiskLevelLow},
		{ProductID: "prod-a", Name: "Alpha CDB", Type: domain.ProductTypeCD, RiskLevel: domain.RiskLevelLow},
		{ProductID: "prod-eq", Name: "Equity One", Type: domain.ProductTypeEquity, RiskLevel: domain.RiskLevelHigh},
	}
	for _, p := range products {
		require.NoError(t, store.Insert(ctx, p))
	}

	got, err := store.GetByType(ctx, domain.ProductTypeCD)
	require.NoError(t, err)
	assert.Equal(t, "Alpha CDB", got.Name)
}

func TestProductStore_GetByTypeNotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewProductStore(pool)

	_, err := store.GetByType(context.Background(), domain.ProductTypeSavings)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProductStore_GetAllOrderedByName(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewProductStore(pool)
	ctx := context.Background()

	products := []*domain.Product{
		{ProductID: "prod-b", Name: "Beta Fund", Type: domain.ProductTypeMultiStrategyFund, RiskLevel: domain.RiskLevelMedium},
		{ProductID: "prod-a", Name: "Alpha Fund", Type: domain.ProductTypeFixedIncomeFund, RiskLevel: domain.RiskLevelLow},
	}
	for _, p := range products {
		require.NoError(t, store.Insert(ctx, p))
	}

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alpha Fund", all[0].Name)
	assert.Equal(t, "Beta Fund", all[1].Name)
}
