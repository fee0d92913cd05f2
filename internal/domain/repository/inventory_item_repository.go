package repository

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/domain/entity"
)

// ItemFilter criterios opcionales para listar artículos.
type ItemFilter struct {
	BrandID  string
	Search   string // nombre, sku o código de barras
	Active   *bool
	LowStock bool // quantity <= reorder_level
}

// InventoryItemRepository define el puerto de persistencia para InventoryItem.
// Usado con pool (lecturas, catálogo) o dentro de una transacción (ajustes).
type InventoryItemRepository interface {
	Create(ctx context.Context, item *entity.InventoryItem) error
	GetByID(ctx context.Context, id string) (*entity.InventoryItem, error)
	GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila del artículo hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error)
	// Update modifica solo campos descriptivos; nunca Quantity ni Version.
	Update(ctx context.Context, item *entity.InventoryItem) error
	// UpdateQuantity escribe la nueva cantidad si la versión coincide; si no, ErrConflict.
	UpdateQuantity(ctx context.Context, id string, quantity, expectedVersion int) error
	SetActive(ctx context.Context, id string, active bool) error
	List(ctx context.Context, filter ItemFilter, limit, offset int) ([]*entity.InventoryItem, error)
}
