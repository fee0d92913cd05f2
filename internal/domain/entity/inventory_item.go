package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa un artículo del inventario del punto de venta.
// Quantity solo se modifica vía ajustes (ver application/inventory); Version se incrementa
// en cada cambio de cantidad y sirve de control optimista.
type InventoryItem struct {
	ID           string
	BrandID      string
	Name         string
	Description  string
	Quantity     int
	Price        decimal.Decimal // precio de venta
	CostPrice    decimal.Decimal
	SKU          string // único
	Barcode      string // opcional
	ReorderLevel int    // umbral de reposición
	Location     string // pasillo / bahía
	IsActive     bool
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NeedsReorder indica si el stock está en o por debajo del punto de reorden.
func (i *InventoryItem) NeedsReorder() bool {
	return i.Quantity <= i.ReorderLevel
}
