package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0.00", formatMoney(decimal.Zero))
	assert.Equal(t, "$999.99", formatMoney(decimal.RequireFromString("999.99")))
	assert.Equal(t, "$1,234,567.50", formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "-$20.00", formatMoney(decimal.NewFromInt(-20)))
}

func TestGenerateStockReportPDF(t *testing.T) {
	report := &dto.StockReportDTO{
		GeneratedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		LowStock: []dto.LowStockItemDTO{
			{SKU: "MIC-PIL-001", Name: "Pilot Sport 4", BrandName: "Michelin", Quantity: 0, ReorderLevel: 4, Shortfall: 4, SuggestedOrderQty: 8, EstimatedCost: decimal.RequireFromString("960")},
		},
		Valuation: dto.ValuationDTO{ItemCount: 1, CostValue: decimal.Zero, RetailValue: decimal.Zero, Margin: decimal.Zero},
	}
	out, err := NewMarotoPDFGenerator("Tienda Centro").GenerateStockReportPDF(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	empty := &dto.StockReportDTO{GeneratedAt: time.Now()}
	out, err = NewMarotoPDFGenerator("").GenerateStockReportPDF(context.Background(), empty)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
