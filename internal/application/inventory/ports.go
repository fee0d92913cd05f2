package inventory

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback y ningún cambio queda visible.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		adjRepo repository.InventoryAdjustmentRepository,
	) error) error
}
