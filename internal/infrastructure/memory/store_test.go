package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/memory"
)

func newStoreWithItem(t *testing.T, qty int) (*memory.Store, *entity.InventoryItem) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, memory.NewBrandRepository(store).Create(ctx, &entity.Brand{ID: "b1", Name: "Michelin"}))
	item := &entity.InventoryItem{ID: "i1", BrandID: "b1", Name: "Tire", SKU: "MIC-1", Quantity: qty, ReorderLevel: 2, IsActive: true}
	require.NoError(t, memory.NewItemRepository(store).Create(ctx, item))
	return store, item
}

func TestTxRunner_ErrorDescartaEscrituras(t *testing.T) {
	store, item := newStoreWithItem(t, 5)
	boom := errors.New("boom")

	err := memory.NewTxRunner(store).Run(context.Background(), func(items repository.InventoryItemRepository, adjs repository.InventoryAdjustmentRepository) error {
		it, err := items.GetForUpdate(context.Background(), item.ID)
		require.NoError(t, err)
		require.NoError(t, items.UpdateQuantity(context.Background(), it.ID, 1, it.Version))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, _ := memory.NewItemRepository(store).GetByID(context.Background(), item.ID)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, 0, got.Version)
}

func TestTxRunner_CommitConservaEdicionDescriptivaConcurrente(t *testing.T) {
	store, item := newStoreWithItem(t, 5)
	ctx := context.Background()
	direct := memory.NewItemRepository(store)

	err := memory.NewTxRunner(store).Run(ctx, func(items repository.InventoryItemRepository, _ repository.InventoryAdjustmentRepository) error {
		it, err := items.GetForUpdate(ctx, item.ID)
		require.NoError(t, err)

		// edición administrativa confirmada mientras la tx tiene el candado
		edited := *it
		edited.Name = "Tire Pilot Sport 4"
		edited.Location = "B-07"
		require.NoError(t, direct.Update(ctx, &edited))

		return items.UpdateQuantity(ctx, it.ID, 2, it.Version)
	})
	require.NoError(t, err)

	got, err := direct.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, 1, got.Version)
	assert.Equal(t, "Tire Pilot Sport 4", got.Name, "el commit del ajuste no pisa campos descriptivos")
	assert.Equal(t, "B-07", got.Location)
}

func TestTxRunner_GetForUpdateRespetaContexto(t *testing.T) {
	store, item := newStoreWithItem(t, 5)
	runner := memory.NewTxRunner(store)

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = runner.Run(context.Background(), func(items repository.InventoryItemRepository, _ repository.InventoryAdjustmentRepository) error {
			_, _ = items.GetForUpdate(context.Background(), item.ID)
			close(held)
			<-release
			return nil
		})
	}()
	<-held

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := runner.Run(ctx, func(items repository.InventoryItemRepository, _ repository.InventoryAdjustmentRepository) error {
		_, err := items.GetForUpdate(ctx, item.ID)
		return err
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(release)
}

func TestItemRepo_UpdateQuantityVersionDesactualizada(t *testing.T) {
	store, item := newStoreWithItem(t, 5)
	repo := memory.NewItemRepository(store)

	require.NoError(t, repo.UpdateQuantity(context.Background(), item.ID, 4, 0))
	err := repo.UpdateQuantity(context.Background(), item.ID, 3, 0)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestItemRepo_SKUDuplicado(t *testing.T) {
	store, _ := newStoreWithItem(t, 0)
	err := memory.NewItemRepository(store).Create(context.Background(), &entity.InventoryItem{ID: "i2", BrandID: "b1", SKU: "MIC-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestAdjustmentRepo_ListMasRecientePrimero(t *testing.T) {
	store, item := newStoreWithItem(t, 0)
	repo := memory.NewAdjustmentRepository(store)
	require.NoError(t, repo.Create(context.Background(), &entity.InventoryAdjustment{ID: "a1", ItemID: item.ID, Type: entity.AdjustmentTypeAddition, Quantity: 3, NewQuantity: 3}))
	require.NoError(t, repo.Create(context.Background(), &entity.InventoryAdjustment{ID: "a2", ItemID: item.ID, Type: entity.AdjustmentTypeRemoval, Quantity: 1, PreviousQuantity: 3, NewQuantity: 2}))

	list, err := repo.List(context.Background(), repository.AdjustmentFilter{ItemID: item.ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a2", list[0].ID)

	err = repo.Create(context.Background(), &entity.InventoryAdjustment{ID: "a3", ItemID: item.ID, Type: entity.AdjustmentTypeRemoval, Quantity: 1, PreviousQuantity: 2, NewQuantity: 3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "new_quantity incoherente con el tipo")
}
