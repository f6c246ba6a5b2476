package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
)

// StockHandler maneja las peticiones HTTP del libro de stock (protegido,
// solo superadmin salvo las lecturas propias del admin).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddLot registra un lote de compra. POST /api/inventory/lots
func (h *StockHandler) AddLot(c *fiber.Ctx) error {
	var in dto.AddInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.AddInventoryLot(c.Context(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: "Inventory added successfully"})
}

// Assign asigna stock global a un admin. POST /api/inventory/assignments
func (h *StockHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.AssignStock(c.Context(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: "Stock assigned successfully"})
}

// Adjust registra un ajuste con signo como lote compensatorio.
// POST /api/inventory/adjustments
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.AdjustInventoryQuantity(c.Context(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: "Inventory adjusted successfully"})
}

// UpdatePricing reprecia todos los lotes de un item y su precio por defecto.
// PUT /api/inventory/items/:id/pricing
func (h *StockHandler) UpdatePricing(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	var in dto.UpdateInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.UpdateInventory(c.Context(), GetUserID(c), itemID, in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: "Inventory updated successfully"})
}

// DeleteItem da de baja un item sin asignaciones (borra lotes y el item).
// DELETE /api/inventory/items/:id
func (h *StockHandler) DeleteItem(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.DeleteInventoryItem(c.Context(), GetUserID(c), itemID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: "Item deleted successfully"})
}

// ItemStock resumen global de stock de un item. GET /api/inventory/items/:id/stock
func (h *StockHandler) ItemStock(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	out, err := h.uc.ItemStock(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MyStock disponible del admin autenticado sobre un item.
// GET /api/inventory/items/:id/my-stock
func (h *StockHandler) MyStock(c *fiber.Ctx) error {
	itemID := c.Params("id")
	if itemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	out, err := h.uc.AdminStock(c.Context(), GetUserID(c), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
