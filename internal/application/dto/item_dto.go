package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada para crear un artículo. InitialQuantity se registra en el libro
// como entrada inicial; quantity nunca se fija directamente.
type CreateItemRequest struct {
	BrandID         string          `json:"brand_id" validate:"required"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SKU             string          `json:"sku" validate:"required,min=1,max=50"`
	Barcode         string          `json:"barcode"`
	ReorderLevel    int             `json:"reorder_level"`
	Location        string          `json:"location"`
	IsActive        *bool           `json:"is_active"`
	InitialQuantity int             `json:"initial_quantity"`
}

// UpdateItemRequest entrada para actualizar un artículo (sin quantity: se maneja vía ajustes).
type UpdateItemRequest struct {
	BrandID      *string          `json:"brand_id"`
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	Barcode      *string          `json:"barcode"`
	ReorderLevel *int             `json:"reorder_level"`
	Location     *string          `json:"location"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID           string          `json:"id"`
	BrandID      string          `json:"brand_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SKU          string          `json:"sku"`
	Barcode      string          `json:"barcode"`
	ReorderLevel int             `json:"reorder_level"`
	Location     string          `json:"location"`
	IsActive     bool            `json:"is_active"`
	NeedsReorder bool            `json:"needs_reorder"`
	Version      int             `json:"version"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ItemListResponse lista paginada de artículos.
type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// ItemListQuery filtros de GET /api/items.
type ItemListQuery struct {
	BrandID  string `query:"brand_id"`
	Search   string `query:"search"`
	Active   string `query:"active"` // "true" | "false" | vacío
	LowStock bool   `query:"low_stock"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}
