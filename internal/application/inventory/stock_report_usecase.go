package inventory

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

// StockReportPDFGenerator genera la representación PDF del reporte de stock.
type StockReportPDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, report *dto.StockReportDTO) ([]byte, error)
}

// StockReportUseCase arma la lista de reposición y la valorización del inventario activo.
type StockReportUseCase struct {
	reportRepo repository.StockReportRepository
	pdf        StockReportPDFGenerator
	now        func() time.Time
}

// NewStockReportUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewStockReportUseCase(reportRepo repository.StockReportRepository, pdf StockReportPDFGenerator) *StockReportUseCase {
	return &StockReportUseCase{reportRepo: reportRepo, pdf: pdf, now: time.Now}
}

// LowStock devuelve los artículos activos en o bajo su punto de reorden, con la cantidad
// sugerida de pedido (2x punto de reorden - stock actual), ordenados por mayor déficit.
func (uc *StockReportUseCase) LowStock(ctx context.Context) ([]dto.LowStockItemDTO, error) {
	rows, err := uc.reportRepo.ListBelowReorderLevel(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LowStockItemDTO, 0, len(rows))
	for _, r := range rows {
		suggested := r.ReorderLevel*2 - r.Quantity
		if suggested < 0 {
			suggested = 0
		}
		out = append(out, dto.LowStockItemDTO{
			ItemID:            r.ItemID,
			SKU:               r.SKU,
			Name:              r.Name,
			BrandName:         r.BrandName,
			Location:          r.Location,
			Quantity:          r.Quantity,
			ReorderLevel:      r.ReorderLevel,
			Shortfall:         r.ReorderLevel - r.Quantity,
			SuggestedOrderQty: suggested,
			EstimatedCost:     r.CostPrice.Mul(decimal.NewFromInt(int64(suggested))),
		})
	}
	// Mayor déficit primero; desempate por SKU para salida estable.
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Shortfall != out[j].Shortfall {
			return out[i].Shortfall > out[j].Shortfall
		}
		return out[i].SKU < out[j].SKU
	})
	return out, nil
}

// Valuation devuelve el valor a costo y a precio de venta del inventario activo.
func (uc *StockReportUseCase) Valuation(ctx context.Context) (*dto.ValuationDTO, error) {
	v, err := uc.reportRepo.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ValuationDTO{
		ItemCount:   v.ItemCount,
		TotalUnits:  v.TotalUnits,
		CostValue:   v.CostValue,
		RetailValue: v.RetailValue,
		Margin:      v.RetailValue.Sub(v.CostValue),
	}, nil
}

// Report combina reposición y valorización.
func (uc *StockReportUseCase) Report(ctx context.Context) (*dto.StockReportDTO, error) {
	low, err := uc.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	val, err := uc.Valuation(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockReportDTO{GeneratedAt: uc.now(), LowStock: low, Valuation: *val}, nil
}

// ReportPDF genera el reporte y lo renderiza en PDF.
func (uc *StockReportUseCase) ReportPDF(ctx context.Context) ([]byte, error) {
	if uc.pdf == nil {
		return nil, errors.New("generador PDF no configurado")
	}
	report, err := uc.Report(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateStockReportPDF(ctx, report)
}
