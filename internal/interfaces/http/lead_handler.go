package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ventas-pro/internal/application/catalog"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
)

// LeadHandler maneja las peticiones HTTP del pipeline de leads.
type LeadHandler struct {
	uc *catalog.UseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *catalog.UseCase) *LeadHandler {
	return &LeadHandler{uc: uc}
}

// Create registra un lead. POST /api/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.LeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.CreateLead(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista todos los leads. GET /api/leads
func (h *LeadHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListLeads(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FollowUps lista los leads abiertos con seguimiento vencido.
// GET /api/leads/follow-ups
func (h *LeadHandler) FollowUps(c *fiber.Ctx) error {
	out, err := h.uc.ListFollowUpsDue(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update actualiza un lead. PUT /api/leads/:id
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	var in dto.LeadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateLead(c.Context(), GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina un lead. DELETE /api/leads/:id
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id es requerido"})
	}
	if err := h.uc.DeleteLead(c.Context(), GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: "Lead deleted successfully"})
}
