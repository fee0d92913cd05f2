package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockItemDTO artículo bajo punto de reorden con la cantidad sugerida de pedido.
type LowStockItemDTO struct {
	ItemID            string          `json:"item_id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	BrandName         string          `json:"brand_name"`
	Location          string          `json:"location"`
	Quantity          int             `json:"quantity"`
	ReorderLevel      int             `json:"reorder_level"`
	Shortfall         int             `json:"shortfall"`           // reorder_level - quantity
	SuggestedOrderQty int             `json:"suggested_order_qty"` // reorder_level*2 - quantity
	EstimatedCost     decimal.Decimal `json:"estimated_cost"`      // suggested * cost_price
}

// ValuationDTO valor del inventario activo.
type ValuationDTO struct {
	ItemCount   int             `json:"item_count"`
	TotalUnits  int             `json:"total_units"`
	CostValue   decimal.Decimal `json:"cost_value"`
	RetailValue decimal.Decimal `json:"retail_value"`
	Margin      decimal.Decimal `json:"margin"`
}

// StockReportDTO reporte completo (usado por el PDF).
type StockReportDTO struct {
	GeneratedAt time.Time         `json:"generated_at"`
	LowStock    []LowStockItemDTO `json:"low_stock"`
	Valuation   ValuationDTO      `json:"valuation"`
}
