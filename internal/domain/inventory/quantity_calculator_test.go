package inventory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/inventory"
)

func TestQuantityCalculator_Addition(t *testing.T) {
	next, err := inventory.QuantityCalculator(entity.AdjustmentTypeAddition, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, next)
}

func TestQuantityCalculator_AdditionCero(t *testing.T) {
	next, err := inventory.QuantityCalculator(entity.AdjustmentTypeAddition, 7, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, next, "una magnitud 0 es válida y no cambia el stock")
}

func TestQuantityCalculator_RemovalHastaCero(t *testing.T) {
	next, err := inventory.QuantityCalculator(entity.AdjustmentTypeRemoval, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, next)
}

func TestQuantityCalculator_RemovalStockNegativo(t *testing.T) {
	next, err := inventory.QuantityCalculator(entity.AdjustmentTypeRemoval, 15, 20)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 15, next, "ante error se devuelve la cantidad anterior")
}

func TestQuantityCalculator_CorrectionNegativa(t *testing.T) {
	next, err := inventory.QuantityCalculator(entity.AdjustmentTypeCorrection, 8, -5)
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	_, err = inventory.QuantityCalculator(entity.AdjustmentTypeCorrection, 2, -5)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestQuantityCalculator_MagnitudNegativaInvalida(t *testing.T) {
	for _, typ := range []string{entity.AdjustmentTypeAddition, entity.AdjustmentTypeRemoval} {
		_, err := inventory.QuantityCalculator(typ, 10, -1)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "tipo %s", typ)
	}
}

func TestQuantityCalculator_TipoDesconocido(t *testing.T) {
	_, err := inventory.QuantityCalculator("transfer", 10, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Límites de magnitud
// ──────────────────────────────────────────────────────────────────────────────

func TestQuantityCalculator_MagnitudFueraDeRango(t *testing.T) {
	cases := []struct {
		name      string
		typ       string
		previous  int
		magnitude int
	}{
		{"addition MaxInt", entity.AdjustmentTypeAddition, 10, math.MaxInt},
		{"addition 3e9", entity.AdjustmentTypeAddition, 10, 3_000_000_000},
		{"removal MaxInt", entity.AdjustmentTypeRemoval, 10, math.MaxInt},
		{"correction MaxInt", entity.AdjustmentTypeCorrection, 10, math.MaxInt},
		{"correction MinInt", entity.AdjustmentTypeCorrection, 10, math.MinInt},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, err := inventory.QuantityCalculator(tc.typ, tc.previous, tc.magnitude)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tc.previous, next)
		})
	}
}

func TestQuantityCalculator_ResultadoSuperaTope(t *testing.T) {
	_, err := inventory.QuantityCalculator(entity.AdjustmentTypeAddition, inventory.MaxQuantity-1, 2)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	next, err := inventory.QuantityCalculator(entity.AdjustmentTypeAddition, inventory.MaxQuantity-1, 1)
	require.NoError(t, err)
	assert.Equal(t, inventory.MaxQuantity, next)
}

func TestQuantityCalculator_CorrectionNegativaGrandeEsStockInsuficiente(t *testing.T) {
	_, err := inventory.QuantityCalculator(entity.AdjustmentTypeCorrection, 10, -inventory.MaxQuantity)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
