package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/application/seed"
	"github.com/jhoicas/pos-tracker/internal/application/usecase"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/memory"
)

const actor = "00000000-0000-0000-0000-0000000000aa"

type seedFixture struct {
	seeder *seed.Seeder
	brands *memory.BrandRepo
	items  *memory.ItemRepo
	ledger *memory.AdjustmentRepo
}

func newSeedFixture(seedValue uint64) *seedFixture {
	store := memory.NewStore()
	brandRepo := memory.NewBrandRepository(store)
	itemRepo := memory.NewItemRepository(store)
	adjustments := inventory.NewAdjustmentUseCase(memory.NewTxRunner(store), nil, inventory.Options{})
	itemUC := usecase.NewItemUseCase(itemRepo, brandRepo, adjustments, nil)
	return &seedFixture{
		seeder: seed.New(brandRepo, itemUC, adjustments, seedValue),
		brands: brandRepo,
		items:  itemRepo,
		ledger: memory.NewAdjustmentRepository(store),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo de demostración
// ──────────────────────────────────────────────────────────────────────────────

func TestRun_CreaMarcasYArticulos(t *testing.T) {
	f := newSeedFixture(42)
	ctx := context.Background()

	sum, err := f.seeder.Run(ctx, actor)
	require.NoError(t, err)
	assert.Equal(t, 20, sum.Brands)
	assert.Equal(t, 10*2+10*3, sum.Items)

	brands, err := f.brands.List(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Len(t, brands, 20)

	mann, err := f.brands.GetByName(ctx, "Mann+Hummel")
	require.NoError(t, err)
	require.NotNil(t, mann)
	assert.Equal(t, "https://www.mannhummel.com", mann.Website)
	assert.Equal(t, "info@mannhummel.com", mann.ContactEmail)

	items, err := f.items.List(ctx, repository.ItemFilter{}, 100, 0)
	require.NoError(t, err)
	assert.Len(t, items, sum.Items)

	adjustments, err := f.ledger.List(ctx, repository.AdjustmentFilter{}, 1000, 0)
	require.NoError(t, err)
	assert.Len(t, adjustments, sum.Adjustments)
}

func TestRun_LibroCuadraConCantidad(t *testing.T) {
	f := newSeedFixture(7)
	ctx := context.Background()

	_, err := f.seeder.Run(ctx, actor)
	require.NoError(t, err)

	items, err := f.items.List(ctx, repository.ItemFilter{}, 100, 0)
	require.NoError(t, err)
	for _, it := range items {
		assert.GreaterOrEqual(t, it.Quantity, 0)

		rows, err := f.ledger.List(ctx, repository.AdjustmentFilter{ItemID: it.ID}, 100, 0)
		require.NoError(t, err)

		total := 0
		for _, r := range rows {
			total += r.Delta()
			assert.Equal(t, actor, r.AdjustedBy)
		}
		assert.Equal(t, it.Quantity, total, "la suma de los deltas del libro es la cantidad de %s", it.SKU)
		if len(rows) > 0 {
			assert.Equal(t, it.Quantity, rows[0].NewQuantity, "el último registro deja la cantidad actual")
		}
	}
}

func TestRun_SegundaEjecucionNoDuplicaMarcas(t *testing.T) {
	f := newSeedFixture(3)
	ctx := context.Background()

	_, err := f.seeder.Run(ctx, actor)
	require.NoError(t, err)
	sum, err := f.seeder.Run(ctx, actor)
	require.NoError(t, err)

	assert.Zero(t, sum.Brands)
	brands, err := f.brands.List(ctx, "", 100, 0)
	require.NoError(t, err)
	assert.Len(t, brands, 20)
}
