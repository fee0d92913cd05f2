package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-tracker/internal/application/inventory"
)

// ReportHandler reportes de stock (protegido).
type ReportHandler struct {
	uc *inventory.StockReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *inventory.StockReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Artículos para reponer
// @Description  Artículos activos en o bajo su punto de reorden, con cantidad sugerida
// @Description  (2 x reorder_level - quantity), ordenados por mayor déficit.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	list, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total": len(list),
		"items": list,
	})
}

// Valuation godoc
// @Summary      Valorización del inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ValuationDTO
// @Router       /api/reports/valuation [get]
func (h *ReportHandler) Valuation(c *fiber.Ctx) error {
	out, err := h.uc.Valuation(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.ReportPDF(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="stock-report.pdf"`)
	return c.Send(pdf)
}
