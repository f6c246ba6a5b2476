package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain"
)

// respondError mapea un error de dominio a su status HTTP y al cuerpo plano
// {"error": "..."}. Los mensajes de regla de negocio viajan tal cual: son
// parte del contrato con el frontend.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrDuplicate):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotEnoughGlobalStock),
		errors.Is(err, domain.ErrNotEnoughAdminStock),
		errors.Is(err, domain.ErrNoAvailableStock),
		errors.Is(err, domain.ErrNoSourceLot),
		errors.Is(err, domain.ErrItemHasAssignments):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: err.Error()})
}
