package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ repository.StockReportRepository = (*StockReportRepo)(nil)

// StockReportRepo consultas agregadas de stock sobre PostgreSQL.
type StockReportRepo struct {
	q Querier
}

// NewStockReportRepository construye el adaptador.
func NewStockReportRepository(q Querier) *StockReportRepo {
	return &StockReportRepo{q: q}
}

// ListBelowReorderLevel artículos activos con quantity <= reorder_level.
func (r *StockReportRepo) ListBelowReorderLevel(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT i.id, i.sku, i.name, b.name, i.location, i.quantity, i.reorder_level, i.cost_price
		FROM inventory_items i
		JOIN brands b ON b.id = i.brand_id
		WHERE i.is_active AND i.quantity <= i.reorder_level
		ORDER BY (i.reorder_level - i.quantity) DESC, i.sku`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var out []repository.LowStockRow
	for rows.Next() {
		var row repository.LowStockRow
		if err := rows.Scan(&row.ItemID, &row.SKU, &row.Name, &row.BrandName, &row.Location,
			&row.Quantity, &row.ReorderLevel, &row.CostPrice); err != nil {
			return nil, fmt.Errorf("scan low stock: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Valuation totales de unidades y valor (costo y venta) del inventario activo.
func (r *StockReportRepo) Valuation(ctx context.Context) (*repository.ValuationResult, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(quantity), 0),
			COALESCE(SUM(quantity * cost_price), 0),
			COALESCE(SUM(quantity * price), 0)
		FROM inventory_items
		WHERE is_active`
	var v repository.ValuationResult
	if err := r.q.QueryRow(ctx, query).Scan(&v.ItemCount, &v.TotalUnits, &v.CostValue, &v.RetailValue); err != nil {
		return nil, fmt.Errorf("valuation: %w", err)
	}
	return &v, nil
}
