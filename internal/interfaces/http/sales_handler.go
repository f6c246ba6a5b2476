package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// SalesHandler maneja las peticiones HTTP de ventas de contado.
type SalesHandler struct {
	uc *sales.UseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.UseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Record registra una venta de contado del admin autenticado.
// POST /api/sales
func (h *SalesHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.RecordSale(c.Context(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: "Sale recorded successfully"})
}

// List lista ventas: el superadmin ve todas, el admin solo las propias.
// GET /api/sales
func (h *SalesHandler) List(c *fiber.Ctx) error {
	if GetRole(c) == entity.RoleSuperadmin {
		out, err := h.uc.AllSales(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.SalesByAdmin(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
