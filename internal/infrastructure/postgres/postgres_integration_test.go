package postgres_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/pos-tracker/pkg/config"
)

// setupDB conecta a TEST_DATABASE_URL, aplica migraciones y vacía las tablas.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	require.NoError(t, postgres.MigrateUp(dsn))

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(ctx, `TRUNCATE inventory_adjustments, inventory_items, brands, users CASCADE`)
	require.NoError(t, err)
	return pool
}

func seedItem(t *testing.T, pool *pgxpool.Pool, uc *inventory.AdjustmentUseCase, sku string, qty int) *entity.InventoryItem {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	brand := &entity.Brand{ID: uuid.New().String(), Name: "Brand " + sku, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, postgres.NewBrandRepository(pool).Create(ctx, brand))

	item := &entity.InventoryItem{
		ID: uuid.New().String(), BrandID: brand.ID, Name: "Item " + sku, SKU: sku,
		Price: decimal.RequireFromString("10.00"), CostPrice: decimal.RequireFromString("6.50"),
		ReorderLevel: 5, IsActive: true, CreatedAt: now, UpdatedAt: now,
	}
	_, err := uc.OpenItem(ctx, item, qty, "")
	require.NoError(t, err)
	return item
}

// -----------------------------------------------------------------------------
// Reconciliación contra PostgreSQL
// -----------------------------------------------------------------------------

func TestPostgres_RemocionesConcurrentesNoSobrevenden(t *testing.T) {
	pool := setupDB(t)
	uc := inventory.NewAdjustmentUseCase(postgres.NewTxRunner(pool, 2*time.Second), nil, inventory.Options{MaxRetries: 5})
	item := seedItem(t, pool, uc, "CONC-1", 5)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, insufficient int
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.ApplyAdjustment(context.Background(), inventory.AdjustmentInput{
				ItemID: item.ID, Type: entity.AdjustmentTypeRemoval, Magnitude: 1,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, domain.ErrInsufficientStock):
				insufficient++
			default:
				t.Errorf("error inesperado: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	assert.Equal(t, 5, insufficient)

	got, err := postgres.NewInventoryItemRepository(pool).GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Quantity)

	ledger, err := postgres.NewInventoryAdjustmentRepository(pool).List(context.Background(),
		repository.AdjustmentFilter{ItemID: item.ID, Type: entity.AdjustmentTypeRemoval}, 100, 0)
	require.NoError(t, err)
	assert.Len(t, ledger, 5)
	assert.Equal(t, 0, ledger[0].NewQuantity, "el registro más reciente refleja la cantidad actual")
}

func TestPostgres_UpdateQuantityVersionDesactualizada(t *testing.T) {
	pool := setupDB(t)
	uc := inventory.NewAdjustmentUseCase(postgres.NewTxRunner(pool, time.Second), nil, inventory.Options{})
	item := seedItem(t, pool, uc, "VER-1", 3)

	repo := postgres.NewInventoryItemRepository(pool)
	err := repo.UpdateQuantity(context.Background(), item.ID, 9, item.Version+7)
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := repo.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
}

func TestPostgres_LibroEsAppendOnly(t *testing.T) {
	pool := setupDB(t)
	uc := inventory.NewAdjustmentUseCase(postgres.NewTxRunner(pool, time.Second), nil, inventory.Options{})
	item := seedItem(t, pool, uc, "APP-1", 2)

	_, err := pool.Exec(context.Background(), `UPDATE inventory_adjustments SET notes = 'x' WHERE item_id = $1`, item.ID)
	assert.Error(t, err)
	_, err = pool.Exec(context.Background(), `DELETE FROM inventory_adjustments WHERE item_id = $1`, item.ID)
	assert.Error(t, err)
}

func TestPostgres_ReferenciaDuplicada(t *testing.T) {
	pool := setupDB(t)
	uc := inventory.NewAdjustmentUseCase(postgres.NewTxRunner(pool, time.Second), nil, inventory.Options{})
	item := seedItem(t, pool, uc, "REF-1", 10)

	in := inventory.AdjustmentInput{ItemID: item.ID, Type: entity.AdjustmentTypeRemoval, Magnitude: 2, Reference: "PO-7"}
	_, err := uc.ApplyAdjustment(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.ApplyAdjustment(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := postgres.NewInventoryItemRepository(pool).GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, got.Quantity, "el duplicado no modifica la cantidad")
}

func TestPostgres_EntradasMalformadasRespetanTaxonomia(t *testing.T) {
	pool := setupDB(t)
	uc := inventory.NewAdjustmentUseCase(postgres.NewTxRunner(pool, time.Second), nil, inventory.Options{})
	item := seedItem(t, pool, uc, "BAD-1", 10)
	ctx := context.Background()

	_, err := uc.ApplyAdjustment(ctx, inventory.AdjustmentInput{ItemID: "abc", Type: entity.AdjustmentTypeAddition, Magnitude: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound, "un id que no es UUID no existe")

	_, err = postgres.NewInventoryItemRepository(pool).GetByID(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = postgres.NewInventoryAdjustmentRepository(pool).GetByID(ctx, "abc")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.ApplyAdjustment(ctx, inventory.AdjustmentInput{
		ItemID: item.ID, Type: entity.AdjustmentTypeAddition, Magnitude: 1, Reference: strings.Repeat("R", 101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ApplyAdjustment(ctx, inventory.AdjustmentInput{ItemID: item.ID, Type: entity.AdjustmentTypeAddition, Magnitude: 3_000_000_000})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := postgres.NewInventoryItemRepository(pool).GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity, "ningún intento fallido modifica la cantidad")
	assert.Equal(t, item.Version, got.Version)
}

func TestPostgres_Valuation(t *testing.T) {
	pool := setupDB(t)
	uc := inventory.NewAdjustmentUseCase(postgres.NewTxRunner(pool, time.Second), nil, inventory.Options{})
	seedItem(t, pool, uc, "VAL-1", 4)
	seedItem(t, pool, uc, "VAL-2", 2)

	v, err := postgres.NewStockReportRepository(pool).Valuation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, v.ItemCount)
	assert.Equal(t, 6, v.TotalUnits)
	assert.True(t, decimal.RequireFromString("39").Equal(v.CostValue))
	assert.True(t, decimal.RequireFromString("60").Equal(v.RetailValue))

	low, err := postgres.NewStockReportRepository(pool).ListBelowReorderLevel(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "VAL-2", low[0].SKU, "mayor faltante primero")
}
