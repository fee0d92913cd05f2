package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var (
	_ repository.InventoryItemRepository = (*ItemRepo)(nil)
	_ repository.InventoryItemRepository = (*txItemRepo)(nil)
)

// ItemRepo acceso directo (fuera de transacción) a los artículos.
type ItemRepo struct {
	store *Store
}

// NewItemRepository construye el repositorio.
func NewItemRepository(store *Store) *ItemRepo {
	return &ItemRepo{store: store}
}

func (s *Store) checkItemUnique(it *entity.InventoryItem) error {
	if _, ok := s.brands[it.BrandID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range s.items {
		if id == it.ID || other.SKU == it.SKU {
			return domain.ErrDuplicate
		}
	}
	return nil
}

func validItem(it *entity.InventoryItem) error {
	if it.Quantity < 0 {
		return domain.ErrInsufficientStock
	}
	if it.ReorderLevel < 0 || it.Price.IsNegative() || it.CostPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func (r *ItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	if err := validItem(it); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if err := r.store.checkItemUnique(it); err != nil {
		return err
	}
	r.store.items[it.ID] = copyItem(it)
	return nil
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if it, ok := r.store.items[id]; ok {
		return copyItem(it), nil
	}
	return nil, nil
}

func (r *ItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, it := range r.store.items {
		if it.SKU == sku {
			return copyItem(it), nil
		}
	}
	return nil, nil
}

// GetForUpdate fuera de transacción no puede mantener el candado; solo lee.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *ItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	if err := validItem(it); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.store.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.store.brands[it.BrandID]; !ok {
		return domain.ErrNotFound
	}
	for id, other := range r.store.items {
		if id != it.ID && other.SKU == it.SKU {
			return domain.ErrDuplicate
		}
	}
	next := copyItem(it)
	next.Quantity = cur.Quantity
	next.Version = cur.Version
	next.CreatedAt = cur.CreatedAt
	r.store.items[it.ID] = next
	return nil
}

func (r *ItemRepo) UpdateQuantity(ctx context.Context, id string, quantity, expectedVersion int) error {
	if quantity < 0 {
		return domain.ErrInsufficientStock
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.store.items[id]
	if !ok || cur.Version != expectedVersion {
		return fmt.Errorf("%w: versión %d desactualizada para %s", domain.ErrConflict, expectedVersion, id)
	}
	cur.Quantity = quantity
	cur.Version++
	cur.UpdatedAt = time.Now()
	return nil
}

func (r *ItemRepo) SetActive(ctx context.Context, id string, active bool) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cur, ok := r.store.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	cur.IsActive = active
	cur.UpdatedAt = time.Now()
	return nil
}

func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	r.store.mu.RLock()
	var list []*entity.InventoryItem
	for _, it := range r.store.items {
		if f.BrandID != "" && it.BrandID != f.BrandID {
			continue
		}
		if f.Search != "" && !containsFold(it.Name, f.Search) && !containsFold(it.SKU, f.Search) && !containsFold(it.Barcode, f.Search) {
			continue
		}
		if f.Active != nil && it.IsActive != *f.Active {
			continue
		}
		if f.LowStock && !it.NeedsReorder() {
			continue
		}
		list = append(list, copyItem(it))
	}
	r.store.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].SKU < list[j].SKU
	})
	return paginate(list, limit, offset), nil
}

// txItemRepo vista transaccional: GetForUpdate toma el candado del artículo y las
// escrituras quedan pendientes hasta el commit.
type txItemRepo struct {
	tx *memTx
}

func (r *txItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	if err := validItem(it); err != nil {
		return err
	}
	r.tx.items[it.ID] = copyItem(it)
	r.tx.created[it.ID] = true
	return nil
}

func (r *txItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if it := r.tx.item(id); it != nil {
		return copyItem(it), nil
	}
	return nil, nil
}

func (r *txItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	for _, it := range r.tx.items {
		if it.SKU == sku {
			return copyItem(it), nil
		}
	}
	return NewItemRepository(r.tx.store).GetBySKU(ctx, sku)
}

func (r *txItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	if !r.tx.isLocked(id) {
		if err := r.tx.store.lockItem(ctx, id); err != nil {
			return nil, err
		}
		r.tx.locked = append(r.tx.locked, id)
	}
	return r.GetByID(ctx, id)
}

func (r *txItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	cur := r.tx.item(it.ID)
	if cur == nil {
		return domain.ErrNotFound
	}
	next := copyItem(it)
	next.Quantity = cur.Quantity
	next.Version = cur.Version
	r.tx.items[it.ID] = next
	r.tx.described[it.ID] = true
	return nil
}

func (r *txItemRepo) UpdateQuantity(ctx context.Context, id string, quantity, expectedVersion int) error {
	if quantity < 0 {
		return domain.ErrInsufficientStock
	}
	cur := r.tx.item(id)
	if cur == nil || cur.Version != expectedVersion {
		return fmt.Errorf("%w: versión %d desactualizada para %s", domain.ErrConflict, expectedVersion, id)
	}
	if _, seen := r.tx.expected[id]; !seen && !r.tx.created[id] {
		r.tx.expected[id] = expectedVersion
	}
	cur.Quantity = quantity
	cur.Version++
	cur.UpdatedAt = time.Now()
	r.tx.items[id] = cur
	return nil
}

func (r *txItemRepo) SetActive(ctx context.Context, id string, active bool) error {
	cur := r.tx.item(id)
	if cur == nil {
		return domain.ErrNotFound
	}
	cur.IsActive = active
	r.tx.items[id] = cur
	r.tx.described[id] = true
	return nil
}

func (r *txItemRepo) List(ctx context.Context, f repository.ItemFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	return NewItemRepository(r.tx.store).List(ctx, f, limit, offset)
}
