package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/application/inventory"
	"github.com/jhoicas/pos-tracker/internal/domain/repository"
)

// AdjustmentHandler ajustes de stock y consulta del libro (protegido).
type AdjustmentHandler struct {
	uc     *inventory.AdjustmentUseCase
	ledger *inventory.LedgerUseCase
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(uc *inventory.AdjustmentUseCase, ledger *inventory.LedgerUseCase) *AdjustmentHandler {
	return &AdjustmentHandler{uc: uc, ledger: ledger}
}

// Apply godoc
// @Summary      Aplicar ajuste de inventario
// @Description  addition/removal con quantity >= 0; correction con quantity con signo.
// @Description  La cantidad del artículo y el registro del libro se guardan juntos.
// @Tags         adjustments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del artículo"
// @Param        body  body  dto.ApplyAdjustmentRequest  true  "adjustment_type, quantity, notes, reference"
// @Success      201   {object}  dto.ApplyAdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK, CONFLICT o DUPLICATE"
// @Router       /api/items/{id}/adjustments [post]
func (h *AdjustmentHandler) Apply(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ApplyAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ApplyAdjustmentFromRequest(c.UserContext(), c.Params("id"), userID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByItem godoc
// @Summary      Historial de ajustes de un artículo
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del artículo"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.AdjustmentListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/items/{id}/adjustments [get]
func (h *AdjustmentHandler) ListByItem(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.ledger.ListByItem(c.UserContext(), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Libro de ajustes
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        item_id          query  string  false  "Artículo"
// @Param        adjustment_type  query  string  false  "addition, removal o correction"
// @Param        adjusted_by      query  string  false  "Usuario"
// @Param        reference        query  string  false  "Referencia"
// @Param        limit            query  int     false  "Límite"  default(20)
// @Param        offset           query  int     false  "Offset"  default(0)
// @Success      200  {object}  dto.AdjustmentListResponse
// @Router       /api/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	filter := repository.AdjustmentFilter{
		ItemID:     c.Query("item_id"),
		Type:       c.Query("adjustment_type"),
		AdjustedBy: c.Query("adjusted_by"),
		Reference:  c.Query("reference"),
	}
	out, err := h.ledger.List(c.UserContext(), filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro del libro
// @Tags         adjustments
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ajuste"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/adjustments/{id} [get]
func (h *AdjustmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.ledger.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
