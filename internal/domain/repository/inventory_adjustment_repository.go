package repository

import (
	"context"

	"github.com/jhoicas/pos-tracker/internal/domain/entity"
)

// AdjustmentFilter criterios opcionales para listar el libro de ajustes.
type AdjustmentFilter struct {
	ItemID     string
	Type       string
	AdjustedBy string
	Reference  string
}

// InventoryAdjustmentRepository define el puerto del libro de ajustes.
// Solo inserción y consulta: el libro es append-only.
type InventoryAdjustmentRepository interface {
	Create(ctx context.Context, adjustment *entity.InventoryAdjustment) error
	GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error)
	GetByReference(ctx context.Context, itemID, reference string) (*entity.InventoryAdjustment, error)
	// List ordena del más reciente al más antiguo.
	List(ctx context.Context, filter AdjustmentFilter, limit, offset int) ([]*entity.InventoryAdjustment, error)
}
