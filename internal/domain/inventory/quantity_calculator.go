package inventory

import (
	"math"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
)

// MaxQuantity tope de stock y de magnitud por ajuste (columna INTEGER).
const MaxQuantity = math.MaxInt32

// QuantityCalculator implementa la regla de cálculo de stock (servicio de dominio).
//
//	addition:   nuevo = anterior + magnitud (magnitud >= 0)
//	removal:    nuevo = anterior - magnitud (magnitud >= 0)
//	correction: nuevo = anterior + magnitud (cualquier signo)
//
// Devuelve ErrInvalidInput para tipos o magnitudes inválidas, o si el resultado supera
// MaxQuantity, y ErrInsufficientStock si el resultado quedaría negativo.
func QuantityCalculator(adjustmentType string, previous, magnitude int) (int, error) {
	if previous < 0 || previous > MaxQuantity || magnitude > MaxQuantity || magnitude < -MaxQuantity {
		return previous, domain.ErrInvalidInput
	}
	var next int
	switch adjustmentType {
	case entity.AdjustmentTypeAddition:
		if magnitude < 0 {
			return previous, domain.ErrInvalidInput
		}
		next = previous + magnitude
	case entity.AdjustmentTypeRemoval:
		if magnitude < 0 {
			return previous, domain.ErrInvalidInput
		}
		next = previous - magnitude
	case entity.AdjustmentTypeCorrection:
		next = previous + magnitude
	default:
		return previous, domain.ErrInvalidInput
	}
	if next < 0 {
		return previous, domain.ErrInsufficientStock
	}
	if next > MaxQuantity {
		return previous, domain.ErrInvalidInput
	}
	return next, nil
}
