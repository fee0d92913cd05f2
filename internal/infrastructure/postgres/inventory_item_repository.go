package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

const itemColumns = `id, brand_id, name, description, quantity, price, cost_price, sku, barcode,
	reorder_level, location, is_active, version, created_at, updated_at`

// InventoryItemRepo implementación del puerto InventoryItemRepository (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

// Create persiste un artículo. SKU repetido -> ErrDuplicate; marca inexistente -> ErrNotFound.
func (r *InventoryItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (` + itemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.BrandID, it.Name, it.Description, it.Quantity, it.Price, it.CostPrice, it.SKU, it.Barcode,
		it.ReorderLevel, it.Location, it.IsActive, it.Version, it.CreatedAt, it.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "insert inventory item")
	}
	return nil
}

// GetByID obtiene un artículo por ID. (nil, nil) si no existe.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, id, "get inventory item")
}

// GetBySKU obtiene un artículo por SKU.
func (r *InventoryItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE sku = $1`, sku, "get inventory item by sku")
}

// GetForUpdate obtiene el artículo bloqueando la fila hasta el fin de la transacción.
// Debe usarse con un Querier que sea pgx.Tx.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.getOne(ctx, `SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, id, "get inventory item for update")
}

func (r *InventoryItemRepo) getOne(ctx context.Context, query, arg, op string) (*entity.InventoryItem, error) {
	it, err := scanItem(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, mapError(err, op)
	}
	return it, nil
}

// Update modifica los campos descriptivos. Quantity y Version no se tocan aquí.
func (r *InventoryItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET brand_id = $2, name = $3, description = $4, price = $5, cost_price = $6,
			sku = $7, barcode = $8, reorder_level = $9, location = $10, is_active = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		it.ID, it.BrandID, it.Name, it.Description, it.Price, it.CostPrice,
		it.SKU, it.Barcode, it.ReorderLevel, it.Location, it.IsActive, it.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "update inventory item")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity escribe la cantidad solo si la versión no cambió desde la lectura.
func (r *InventoryItemRepo) UpdateQuantity(ctx context.Context, id string, quantity, expectedVersion int) error {
	query := `
		UPDATE inventory_items SET quantity = $2, version = version + 1, updated_at = $4
		WHERE id = $1 AND version = $3`
	tag, err := r.q.Exec(ctx, query, id, quantity, expectedVersion, time.Now())
	if err != nil {
		return mapError(err, "update inventory quantity")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: versión %d desactualizada para %s", domain.ErrConflict, expectedVersion, id)
	}
	return nil
}

// SetActive activa o desactiva el artículo.
func (r *InventoryItemRepo) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.q.Exec(ctx, `UPDATE inventory_items SET is_active = $2, updated_at = $3 WHERE id = $1`, id, active, time.Now())
	if err != nil {
		return mapError(err, "set inventory item active")
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista artículos con filtros opcionales, ordenados por nombre.
func (r *InventoryItemRepo) List(ctx context.Context, f repository.ItemFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	var w whereBuilder
	if f.BrandID != "" {
		w.add("brand_id = $%d", f.BrandID)
	}
	if f.Search != "" {
		w.add("(name ILIKE $%[1]d OR sku ILIKE $%[1]d OR barcode ILIKE $%[1]d)", "%"+f.Search+"%")
	}
	if f.Active != nil {
		w.add("is_active = $%d", *f.Active)
	}
	if f.LowStock {
		w.addRaw("quantity <= reorder_level")
	}
	query := `SELECT ` + itemColumns + ` FROM inventory_items` + w.sql() + ` ORDER BY name, sku`
	query += w.page(limit, offset)

	rows, err := r.q.Query(ctx, query, w.args...)
	if err != nil {
		return nil, mapError(err, "list inventory items")
	}
	defer rows.Close()

	var list []*entity.InventoryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgxScanner) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	err := row.Scan(
		&it.ID, &it.BrandID, &it.Name, &it.Description, &it.Quantity, &it.Price, &it.CostPrice, &it.SKU, &it.Barcode,
		&it.ReorderLevel, &it.Location, &it.IsActive, &it.Version, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
