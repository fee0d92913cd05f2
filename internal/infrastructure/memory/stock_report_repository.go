package memory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

var _ repository.StockReportRepository = (*StockReportRepo)(nil)

// StockReportRepo agregados de stock calculados sobre el almacén.
type StockReportRepo struct {
	store *Store
}

// NewStockReportRepository construye el repositorio.
func NewStockReportRepository(store *Store) *StockReportRepo {
	return &StockReportRepo{store: store}
}

func (r *StockReportRepo) ListBelowReorderLevel(ctx context.Context) ([]repository.LowStockRow, error) {
	r.store.mu.RLock()
	var out []repository.LowStockRow
	for _, it := range r.store.items {
		if !it.IsActive || !it.NeedsReorder() {
			continue
		}
		row := repository.LowStockRow{
			ItemID: it.ID, SKU: it.SKU, Name: it.Name, Location: it.Location,
			Quantity: it.Quantity, ReorderLevel: it.ReorderLevel, CostPrice: it.CostPrice,
		}
		if b, ok := r.store.brands[it.BrandID]; ok {
			row.BrandName = b.Name
		}
		out = append(out, row)
	}
	r.store.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].ReorderLevel-out[i].Quantity, out[j].ReorderLevel-out[j].Quantity
		if si != sj {
			return si > sj
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

func (r *StockReportRepo) Valuation(ctx context.Context) (*repository.ValuationResult, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	v := &repository.ValuationResult{CostValue: decimal.Zero, RetailValue: decimal.Zero}
	for _, it := range r.store.items {
		if !it.IsActive {
			continue
		}
		qty := decimal.NewFromInt(int64(it.Quantity))
		v.ItemCount++
		v.TotalUnits += it.Quantity
		v.CostValue = v.CostValue.Add(it.CostPrice.Mul(qty))
		v.RetailValue = v.RetailValue.Add(it.Price.Mul(qty))
	}
	return v, nil
}
