package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/application/usecase"
)

// BrandHandler maneja las peticiones HTTP para Brand (protegido; escrituras solo admin).
type BrandHandler struct {
	uc *usecase.BrandUseCase
}

// NewBrandHandler construye el handler.
func NewBrandHandler(uc *usecase.BrandUseCase) *BrandHandler {
	return &BrandHandler{uc: uc}
}

// Create godoc
// @Summary      Crear marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBrandRequest  true  "Datos de la marca"
// @Success      201   {object}  dto.BrandResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/brands [post]
func (h *BrandHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener marca por ID
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la marca"
// @Success      200  {object}  dto.BrandResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [get]
func (h *BrandHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar marcas
// @Tags         brands
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Nombre o país"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.BrandListResponse
// @Router       /api/brands [get]
func (h *BrandHandler) List(c *fiber.Ctx) error {
	limit, offset := page(c)
	out, err := h.uc.List(c.UserContext(), c.Query("search"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar marca
// @Tags         brands
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la marca"
// @Param        body  body  dto.UpdateBrandRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.BrandResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/brands/{id} [put]
func (h *BrandHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBrandRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
