package dto

import "time"

// ApplyAdjustmentRequest body para POST /api/items/:id/adjustments.
// quantity es la magnitud (>= 0 en addition/removal, con signo en correction).
type ApplyAdjustmentRequest struct {
	Type      string `json:"adjustment_type" validate:"required,oneof=addition removal correction"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
	Reference string `json:"reference"`
}

// AdjustmentResponse salida de un registro del libro.
type AdjustmentResponse struct {
	ID               string    `json:"id"`
	ItemID           string    `json:"item_id"`
	Type             string    `json:"adjustment_type"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Notes            string    `json:"notes"`
	AdjustedBy       string    `json:"adjusted_by"`
	Reference        string    `json:"reference"`
	CreatedAt        time.Time `json:"created_at"`
}

// ApplyAdjustmentResponse artículo actualizado + registro del libro.
type ApplyAdjustmentResponse struct {
	Item       ItemResponse       `json:"item"`
	Adjustment AdjustmentResponse `json:"adjustment"`
}

// AdjustmentListResponse lista paginada del libro.
type AdjustmentListResponse struct {
	Items []AdjustmentResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
