package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-pro/internal/application/reports"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
)

// ReportsHandler maneja las lecturas del dashboard (solo superadmin).
type ReportsHandler struct {
	uc      *reports.UseCase
	stockUC *stock.UseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.UseCase, stockUC *stock.UseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc, stockUC: stockUC}
}

// CategoryRevenue ingresos por categoría. GET /api/reports/category-revenue
func (h *ReportsHandler) CategoryRevenue(c *fiber.Ctx) error {
	out, err := h.uc.CategoryRevenue(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdminStock asignado/vendido/disponible por (admin, item).
// GET /api/reports/admin-stock
func (h *ReportsHandler) AdminStock(c *fiber.Ctx) error {
	out, err := h.uc.AdminStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreditSummary resumen del libro de crédito. GET /api/reports/credit-summary
func (h *ReportsHandler) CreditSummary(c *fiber.Ctx) error {
	out, err := h.uc.CreditSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// OverdueInstallments cuotas vencidas de créditos activos.
// GET /api/reports/overdue-installments
func (h *ReportsHandler) OverdueInstallments(c *fiber.Ctx) error {
	out, err := h.uc.OverdueInstallments(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AuditTrail últimas entradas de la bitácora. GET /api/reports/audit-trail
func (h *ReportsHandler) AuditTrail(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	out, err := h.uc.AuditTrail(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Admins lista los admins activos (formularios de asignación).
// GET /api/users/admins
func (h *ReportsHandler) Admins(c *fiber.Ctx) error {
	out, err := h.stockUC.Admins(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
