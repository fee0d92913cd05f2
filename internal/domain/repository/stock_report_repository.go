package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// LowStockRow artículo activo en o por debajo de su punto de reorden.
type LowStockRow struct {
	ItemID       string
	SKU          string
	Name         string
	BrandName    string
	Location     string
	Quantity     int
	ReorderLevel int
	CostPrice    decimal.Decimal
}

// ValuationResult totales del inventario activo.
type ValuationResult struct {
	ItemCount   int
	TotalUnits  int
	CostValue   decimal.Decimal // sum(quantity * cost_price)
	RetailValue decimal.Decimal // sum(quantity * price)
}

// StockReportRepository consultas agregadas de stock (solo lectura).
type StockReportRepository interface {
	ListBelowReorderLevel(ctx context.Context) ([]LowStockRow, error)
	Valuation(ctx context.Context) (*ValuationResult, error)
}
