package entity

import "time"

// Tipos de ajuste de inventario.
const (
	AdjustmentTypeAddition   = "addition"   // entrada
	AdjustmentTypeRemoval    = "removal"    // salida
	AdjustmentTypeCorrection = "correction" // conteo físico, delta con signo
)

// IsValidAdjustmentType indica si t es uno de los tipos reconocidos.
func IsValidAdjustmentType(t string) bool {
	switch t {
	case AdjustmentTypeAddition, AdjustmentTypeRemoval, AdjustmentTypeCorrection:
		return true
	}
	return false
}

// InventoryAdjustment es un registro inmutable del libro de ajustes.
// NewQuantity = PreviousQuantity + delta con signo.
type InventoryAdjustment struct {
	ID               string
	ItemID           string
	Type             string
	Quantity         int // magnitud solicitada (con signo en correction)
	PreviousQuantity int
	NewQuantity      int
	Notes            string
	AdjustedBy       string
	Reference        string
	CreatedAt        time.Time
}

// Delta devuelve el cambio neto aplicado al stock.
func (a *InventoryAdjustment) Delta() int {
	return a.NewQuantity - a.PreviousQuantity
}
