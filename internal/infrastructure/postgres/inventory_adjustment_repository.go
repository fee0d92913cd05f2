package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ repository.InventoryAdjustmentRepository = (*InventoryAdjustmentRepo)(nil)

const adjustmentColumns = `id, item_id, adjustment_type, quantity, previous_quantity, new_quantity,
	notes, adjusted_by, reference, created_at`

// InventoryAdjustmentRepo libro de ajustes (append-only: solo INSERT y SELECT).
type InventoryAdjustmentRepo struct {
	q Querier
}

// NewInventoryAdjustmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryAdjustmentRepository(q Querier) *InventoryAdjustmentRepo {
	return &InventoryAdjustmentRepo{q: q}
}

// Create inserta el registro. Referencia repetida para el mismo artículo -> ErrDuplicate.
func (r *InventoryAdjustmentRepo) Create(ctx context.Context, a *entity.InventoryAdjustment) error {
	query := `
		INSERT INTO inventory_adjustments (` + adjustmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ItemID, a.Type, a.Quantity, a.PreviousQuantity, a.NewQuantity,
		a.Notes, a.AdjustedBy, a.Reference, a.CreatedAt,
	)
	if err != nil {
		return mapError(err, "insert inventory adjustment")
	}
	return nil
}

// GetByID obtiene un registro del libro. (nil, nil) si no existe.
func (r *InventoryAdjustmentRepo) GetByID(ctx context.Context, id string) (*entity.InventoryAdjustment, error) {
	a, err := scanAdjustment(r.q.QueryRow(ctx, `SELECT `+adjustmentColumns+` FROM inventory_adjustments WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapError(err, "get inventory adjustment")
	}
	return a, nil
}

// GetByReference busca el ajuste de un artículo con la referencia dada.
func (r *InventoryAdjustmentRepo) GetByReference(ctx context.Context, itemID, reference string) (*entity.InventoryAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM inventory_adjustments WHERE item_id = $1 AND reference = $2`
	a, err := scanAdjustment(r.q.QueryRow(ctx, query, itemID, reference))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapError(err, "get inventory adjustment by reference")
	}
	return a, nil
}

// List devuelve registros del más reciente al más antiguo (orden de inserción).
func (r *InventoryAdjustmentRepo) List(ctx context.Context, f repository.AdjustmentFilter, limit, offset int) ([]*entity.InventoryAdjustment, error) {
	var w whereBuilder
	if f.ItemID != "" {
		w.add("item_id = $%d", f.ItemID)
	}
	if f.Type != "" {
		w.add("adjustment_type = $%d", f.Type)
	}
	if f.AdjustedBy != "" {
		w.add("adjusted_by = $%d", f.AdjustedBy)
	}
	if f.Reference != "" {
		w.add("reference = $%d", f.Reference)
	}
	query := `SELECT ` + adjustmentColumns + ` FROM inventory_adjustments` + w.sql() + ` ORDER BY seq DESC`
	query += w.page(limit, offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, mapError(err, "list inventory adjustments")
	}
	defer rows.Close()

	var list []*entity.InventoryAdjustment
	for rows.Next() {
		a, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory adjustment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func scanAdjustment(row pgxScanner) (*entity.InventoryAdjustment, error) {
	var a entity.InventoryAdjustment
	err := row.Scan(
		&a.ID, &a.ItemID, &a.Type, &a.Quantity, &a.PreviousQuantity, &a.NewQuantity,
		&a.Notes, &a.AdjustedBy, &a.Reference, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
