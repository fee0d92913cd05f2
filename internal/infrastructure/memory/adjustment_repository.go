package memory

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var (
	_ repository.InventoryAdjustmentRepository = (*AdjustmentRepo)(nil)
	_ repository.InventoryAdjustmentRepository = (*txAdjustmentRepo)(nil)
)

// AdjustmentRepo lectura del libro y escritura directa (fuera de transacción).
type AdjustmentRepo struct {
	store *Store
}

// NewAdjustmentRepository construye el repositorio.
func NewAdjustmentRepository(store *Store) *AdjustmentRepo {
	return &AdjustmentRepo{store: store}
}

func (s *Store) findByReference(itemID, reference string) *entity.InventoryAdjustment {
	for _, a := range s.adjustments {
		if a.ItemID == itemID && a.Reference == reference {
			return a
		}
	}
	return nil
}

func validAdjustment(a *entity.InventoryAdjustment) error {
	if !entity.IsValidAdjustmentType(a.Type) || a.PreviousQuantity < 0 || a.NewQuantity < 0 {
		return domain.ErrInvalidInput
	}
	want := a.PreviousQuantity + a.Quantity
	if a.Type == entity.AdjustmentTypeRemoval {
		want = a.PreviousQuantity - a.Quantity
	}
	if a.NewQuantity != want || (a.Type != entity.AdjustmentTypeCorrection && a.Quantity < 0) {
		return domain.ErrInvalidInput
	}
	return nil
}

func (r *AdjustmentRepo) Create(ctx context.Context, a *entity.InventoryAdjustment) error {
	if err := validAdjustment(a); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.items[a.ItemID]; !ok {
		return domain.ErrNotFound
	}
	if a.Reference != "" && r.store.findByReference(a.ItemID, a.Reference) != nil {
		return domain.ErrDuplicate
	}
	r.store.adjustments = append(r.store.adjustments, copyAdjustment(a))
	return nil
}

func (r *AdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, a := range r.store.adjustments {
		if a.ID == id {
			return copyAdjustment(a), nil
		}
	}
	return nil, nil
}

func (r *AdjustmentRepo) GetByReference(ctx context.Context, itemID, reference string) (*entity.InventoryAdjustment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if a := r.store.findByReference(itemID, reference); a != nil {
		return copyAdjustment(a), nil
	}
	return nil, nil
}

// List recorre el libro del más reciente al más antiguo.
func (r *AdjustmentRepo) List(ctx context.Context, f repository.AdjustmentFilter, limit, offset int) ([]*entity.InventoryAdjustment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var list []*entity.InventoryAdjustment
	for i := len(r.store.adjustments) - 1; i >= 0; i-- {
		a := r.store.adjustments[i]
		if f.ItemID != "" && a.ItemID != f.ItemID {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.AdjustedBy != "" && a.AdjustedBy != f.AdjustedBy {
			continue
		}
		if f.Reference != "" && a.Reference != f.Reference {
			continue
		}
		list = append(list, copyAdjustment(a))
	}
	return paginate(list, limit, offset), nil
}

// txAdjustmentRepo acumula inserciones hasta el commit de la transacción.
type txAdjustmentRepo struct {
	tx *memTx
}

func (r *txAdjustmentRepo) Create(ctx context.Context, a *entity.InventoryAdjustment) error {
	if err := validAdjustment(a); err != nil {
		return err
	}
	if r.tx.item(a.ItemID) == nil {
		return domain.ErrNotFound
	}
	r.tx.adjustments = append(r.tx.adjustments, copyAdjustment(a))
	return nil
}

func (r *txAdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	for _, a := range r.tx.adjustments {
		if a.ID == id {
			return copyAdjustment(a), nil
		}
	}
	return NewAdjustmentRepository(r.tx.store).GetByID(ctx, id)
}

func (r *txAdjustmentRepo) GetByReference(ctx context.Context, itemID, reference string) (*entity.InventoryAdjustment, error) {
	for _, a := range r.tx.adjustments {
		if a.ItemID == itemID && a.Reference == reference {
			return copyAdjustment(a), nil
		}
	}
	return NewAdjustmentRepository(r.tx.store).GetByReference(ctx, itemID, reference)
}

func (r *txAdjustmentRepo) List(ctx context.Context, f repository.AdjustmentFilter, limit, offset int) ([]*entity.InventoryAdjustment, error) {
	return NewAdjustmentRepository(r.tx.store).List(ctx, f, limit, offset)
}
