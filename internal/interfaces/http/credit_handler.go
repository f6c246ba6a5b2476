package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// CreditHandler maneja las peticiones HTTP de ventas a crédito.
type CreditHandler struct {
	uc          *sales.UseCase
	statementUC *sales.StatementUseCase
}

// NewCreditHandler construye el handler.
func NewCreditHandler(uc *sales.UseCase, statementUC *sales.StatementUseCase) *CreditHandler {
	return &CreditHandler{uc: uc, statementUC: statementUC}
}

// Record registra una venta a crédito del admin autenticado.
// POST /api/credit-sales
func (h *CreditHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordCreditSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if err := h.uc.RecordCreditSale(c.Context(), GetUserID(c), in); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: "Credit sale recorded successfully"})
}

// List lista créditos: el superadmin ve todos, el admin solo los propios.
// GET /api/credit-sales
func (h *CreditHandler) List(c *fiber.Ctx) error {
	if GetRole(c) == entity.RoleSuperadmin {
		out, err := h.uc.ListCreditSales(c.Context())
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.uc.ListCreditSalesByAdmin(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID devuelve un crédito con su cronograma completo.
// GET /api/credit-sales/:id
func (h *CreditHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	out, err := h.uc.CreditSaleWithSchedule(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkCompleted marca un crédito como saldado (saldo pendiente a cero).
// PUT /api/credit-sales/:id/complete
func (h *CreditHandler) MarkCompleted(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.MarkCreditSaleCompleted(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: "Credit sale marked as completed"})
}

// Statement descarga el estado de cuenta del crédito en PDF.
// GET /api/credit-sales/:id/statement
func (h *CreditHandler) Statement(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	pdfBytes, filename, err := h.statementUC.DownloadStatementPDF(
		c.Context(), GetUserID(c), GetRole(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
