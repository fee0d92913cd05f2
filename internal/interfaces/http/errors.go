package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/pos-tracker/internal/application/dto"
	"github.com/jhoicas/pos-tracker/internal/domain"
)

// respondError traduce errores de dominio a HTTP. Lo no reconocido se registra y responde 500.
func respondError(c *fiber.Ctx, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "error interno"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", "datos inválidos"
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusConflict, "DUPLICATE", "el recurso ya existe"
	case errors.Is(err, domain.ErrInsufficientStock):
		status, code, msg = fiber.StatusConflict, "INSUFFICIENT_STOCK", "stock insuficiente"
	case errors.Is(err, domain.ErrConflict):
		c.Set(fiber.HeaderRetryAfter, "1")
		status, code, msg = fiber.StatusConflict, "CONFLICT", "conflicto de concurrencia, reintente"
	case errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// page lee limit/offset del query string.
func page(c *fiber.Ctx) (limit, offset int) {
	p := dto.PageRequest{Limit: c.QueryInt("limit", dto.DefaultPageLimit), Offset: c.QueryInt("offset", 0)}
	p.Normalize()
	return p.Limit, p.Offset
}
