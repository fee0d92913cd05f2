package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/domain"
	"github.com/jhoicas/pos-tracker/internal/domain/entity"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
	"github.com/jhoicas/pos-tracker/internal/infrastructure/memory"
)

func openPriced(t *testing.T, f *fixture, sku string, qty, reorder int, cost, price string) {
	t.Helper()
	item := &entity.InventoryItem{
		ID: "item-" + sku, BrandID: "brand-1", Name: sku, SKU: sku, ReorderLevel: reorder, IsActive: true,
		CostPrice: decimal.RequireFromString(cost), Price: decimal.RequireFromString(price),
	}
	_, err := f.uc.OpenItem(context.Background(), item, qty, "")
	require.NoError(t, err)
}

func TestStockReport_LowStockSugerenciaYOrden(t *testing.T) {
	f := newFixture(t, nil, inventory.Options{})
	openPriced(t, f, "A", 4, 5, "10", "15")  // déficit 1, sugerido 6
	openPriced(t, f, "B", 0, 10, "2.5", "4") // déficit 10, sugerido 20
	openPriced(t, f, "C", 9, 5, "1", "2")    // sobre el punto de reorden

	uc := inventory.NewStockReportUseCase(memory.NewStockReportRepository(f.store), nil)
	low, err := uc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, low, 2)

	assert.Equal(t, "B", low[0].SKU)
	assert.Equal(t, 20, low[0].SuggestedOrderQty)
	assert.True(t, decimal.RequireFromString("50").Equal(low[0].EstimatedCost))
	assert.Equal(t, "Bridgestone", low[0].BrandName)

	assert.Equal(t, "A", low[1].SKU)
	assert.Equal(t, 1, low[1].Shortfall)
	assert.Equal(t, 6, low[1].SuggestedOrderQty)
}

func TestStockReport_Valuation(t *testing.T) {
	f := newFixture(t, nil, inventory.Options{})
	openPriced(t, f, "A", 4, 1, "10", "15")
	openPriced(t, f, "B", 2, 1, "2.5", "4")

	uc := inventory.NewStockReportUseCase(memory.NewStockReportRepository(f.store), nil)
	v, err := uc.Valuation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, v.ItemCount)
	assert.Equal(t, 6, v.TotalUnits)
	assert.True(t, decimal.RequireFromString("45").Equal(v.CostValue))
	assert.True(t, decimal.RequireFromString("68").Equal(v.RetailValue))
	assert.True(t, decimal.RequireFromString("23").Equal(v.Margin))
}

type fakePDF struct{ got *dto.StockReportDTO }

func (p *fakePDF) GenerateStockReportPDF(_ context.Context, r *dto.StockReportDTO) ([]byte, error) {
	p.got = r
	return []byte("%PDF-"), nil
}

func TestStockReport_PDF(t *testing.T) {
	f := newFixture(t, nil, inventory.Options{})
	openPriced(t, f, "A", 0, 3, "1", "2")

	pdf := &fakePDF{}
	uc := inventory.NewStockReportUseCase(memory.NewStockReportRepository(f.store), pdf)
	out, err := uc.ReportPDF(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-"), out)
	require.NotNil(t, pdf.got)
	assert.Len(t, pdf.got.LowStock, 1)

	_, err = inventory.NewStockReportUseCase(memory.NewStockReportRepository(f.store), nil).ReportPDF(context.Background())
	assert.Error(t, err)
}

func TestLedger_ListByItem(t *testing.T) {
	f := newFixture(t, nil, inventory.Options{})
	item := f.open(t, "L-1", 3)
	_, err := apply(f, item.ID, entity.AdjustmentTypeRemoval, 1)
	require.NoError(t, err)

	uc := inventory.NewLedgerUseCase(f.adjs, f.items)
	out, err := uc.ListByItem(context.Background(), item.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, entity.AdjustmentTypeRemoval, out.Items[0].Type)

	_, err = uc.ListByItem(context.Background(), "no-existe", 10, 0)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	byType, err := uc.List(context.Background(), repository.AdjustmentFilter{Type: entity.AdjustmentTypeAddition}, 10, 0)
	require.NoError(t, err)
	assert.Len(t, byType.Items, 1)
}
