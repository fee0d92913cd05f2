package memory

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner transacciones en memoria: las escrituras se acumulan y se aplican juntas al confirmar.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn; si devuelve error nada de lo escrito queda visible.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	adjRepo repository.InventoryAdjustmentRepository,
) error) error {
	tx := &memTx{
		store:     r.store,
		items:     make(map[string]*entity.InventoryItem),
		created:   make(map[string]bool),
		described: make(map[string]bool),
		expected:  make(map[string]int),
	}
	defer tx.release()

	if err := fn(&txItemRepo{tx: tx}, &txAdjustmentRepo{tx: tx}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return tx.commit()
}

type memTx struct {
	store       *Store
	locked      []string
	items       map[string]*entity.InventoryItem // escrituras pendientes
	created     map[string]bool
	described   map[string]bool // Update o SetActive dentro de la tx
	expected    map[string]int  // versión leída por UpdateQuantity
	adjustments []*entity.InventoryAdjustment
}

func (t *memTx) release() {
	for _, id := range t.locked {
		t.store.unlockItem(id)
	}
	t.locked = nil
}

func (t *memTx) isLocked(id string) bool {
	for _, l := range t.locked {
		if l == id {
			return true
		}
	}
	return false
}

// item devuelve la vista de la transacción: pendiente si existe, si no la confirmada.
func (t *memTx) item(id string) *entity.InventoryItem {
	if it, ok := t.items[id]; ok {
		return it
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	if it, ok := t.store.items[id]; ok {
		return copyItem(it)
	}
	return nil
}

// commit valida las restricciones y publica todo bajo un único candado.
func (t *memTx) commit() error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, it := range t.items {
		if t.created[id] {
			if err := s.checkItemUnique(it); err != nil {
				return err
			}
			continue
		}
		current, ok := s.items[id]
		if !ok {
			return domain.ErrNotFound
		}
		if v, ok := t.expected[id]; ok && current.Version != v {
			return domain.ErrConflict
		}
	}
	for i, a := range t.adjustments {
		if a.Reference == "" {
			continue
		}
		if s.findByReference(a.ItemID, a.Reference) != nil {
			return domain.ErrDuplicate
		}
		for _, other := range t.adjustments[:i] {
			if other.ItemID == a.ItemID && other.Reference == a.Reference {
				return domain.ErrDuplicate
			}
		}
	}

	for id, it := range t.items {
		s.items[id] = t.merge(s.items[id], it)
	}
	for _, a := range t.adjustments {
		s.adjustments = append(s.adjustments, copyAdjustment(a))
	}
	return nil
}

// merge aplica sobre la fila confirmada solo los campos que la tx escribió: descriptivos si
// hubo Update/SetActive, cantidad y versión si hubo UpdateQuantity.
func (t *memTx) merge(current, staged *entity.InventoryItem) *entity.InventoryItem {
	if t.created[staged.ID] {
		return copyItem(staged)
	}
	next := copyItem(current)
	if t.described[staged.ID] {
		next = copyItem(staged)
		next.Quantity = current.Quantity
		next.Version = current.Version
	}
	if _, ok := t.expected[staged.ID]; ok {
		next.Quantity = staged.Quantity
		next.Version = staged.Version
		next.UpdatedAt = staged.UpdatedAt
	}
	return next
}
