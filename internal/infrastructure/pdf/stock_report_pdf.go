// Package pdf genera el reporte de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Reporte de stock + fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VALORIZACIÓN: artículos / unidades / costo / venta / margen │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Artículo | Marca | Stock | Reorden | Pedir | $ │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total estimado de reposición                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/application/inventory"
)

var _ inventory.StockReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa inventory.StockReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	storeName string
}

// NewMarotoPDFGenerator construye el generador; storeName aparece en el encabezado.
func NewMarotoPDFGenerator(storeName string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{storeName: storeName}
}

// GenerateStockReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateStockReportPDF(_ context.Context, report *dto.StockReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(valuationRow(report.Valuation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle(fmt.Sprintf("ARTÍCULOS PARA REPONER (%d)", len(report.LowStock))))
	if len(report.LowStock) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Todo el inventario activo está sobre su punto de reorden.", props.Text{
				Size: 8, Top: 2, Color: colorGray,
			}),
		)))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range tableDetailRows(report.LowStock) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(totalRow(report.LowStock))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(storeName string, report *dto.StockReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(nonEmpty(storeName, "POS Tracker"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+report.GeneratedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func valuationRow(v dto.ValuationDTO) core.Row {
	cell := func(label, value string, size int) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		)
	}
	return row.New(14).Add(
		cell("ARTÍCULOS", strconv.Itoa(v.ItemCount), 2),
		cell("UNIDADES", formatThousands(strconv.Itoa(v.TotalUnits)), 2),
		cell("VALOR A COSTO", formatMoney(v.CostValue), 3),
		cell("VALOR A VENTA", formatMoney(v.RetailValue), 3),
		cell("MARGEN", formatMoney(v.Margin), 2),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Artículo", 3, align.Left),
		h("Marca", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Reorden", 1, align.Center),
		h("Pedir", 1, align.Center),
		h("Costo est.", 2, align.Right),
	)
}

// tableDetailRows: una fila por artículo; stock en cero resaltado.
func tableDetailRows(items []dto.LowStockItemDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		qtyProps := props.Text{Size: 8, Align: align.Center, Top: 1}
		if it.Quantity == 0 {
			qtyProps.Style = fontstyle.Bold
			qtyProps.Color = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(it.Name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(it.BrandName, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.Itoa(it.Quantity), qtyProps)),
			col.New(1).Add(text.New(strconv.Itoa(it.ReorderLevel), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.SuggestedOrderQty), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(formatMoney(it.EstimatedCost), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func totalRow(items []dto.LowStockItemDTO) core.Row {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.EstimatedCost)
	}
	return row.New(10).Add(
		col.New(7),
		col.New(3).Add(text.New("TOTAL REPOSICIÓN:", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea con dos decimales y separador de miles.
// Ej: 1234567.5 → "$1,234,567.50", -20 → "-$20.00"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	out := "$" + formatThousands(intPart) + "." + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

// formatThousands inserta comas de miles en un string de dígitos.
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
