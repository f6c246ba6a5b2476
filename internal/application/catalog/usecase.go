// Package catalog implementa el CRUD de categorías, artículos y leads.
// Ninguna operación de este paquete toca el libro de stock.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-pro/internal/application/audit"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
	"github.com/jhoicas/ventas-pro/pkg/validate"
)

// UseCase casos de uso CRUD para el catálogo y el pipeline de leads.
type UseCase struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.ItemRepository
	leadRepo     repository.LeadRepository
	recorder     *audit.Recorder
}

// NewUseCase construye el caso de uso del catálogo.
func NewUseCase(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	leadRepo repository.LeadRepository,
	recorder *audit.Recorder,
) *UseCase {
	return &UseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		leadRepo:     leadRepo,
		recorder:     recorder,
	}
}

// ── Categorías ────────────────────────────────────────────────────────────────

// CreateCategory crea una categoría activa.
func (uc *UseCase) CreateCategory(ctx context.Context, actingUserID string, in dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionCreate, "Category", category.ID, category.Name)
	return toCategoryDTO(category), nil
}

// ListCategories lista todas las categorías.
func (uc *UseCase) ListCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryDTO, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryDTO(c))
	}
	return out, nil
}

// UpdateCategory renombra una categoría.
func (uc *UseCase) UpdateCategory(ctx context.Context, actingUserID, id string, in dto.CreateCategoryRequest) (*dto.CategoryDTO, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	category.Name = in.Name
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionUpdate, "Category", category.ID, category.Name)
	return toCategoryDTO(category), nil
}

// DeleteCategory elimina una categoría sin artículos. Con artículos
// asociados la operación se rechaza.
func (uc *UseCase) DeleteCategory(ctx context.Context, actingUserID, id string) error {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListByCategory(id)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.categoryRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionDelete, "Category", id, category.Name)
	return nil
}

// ── Artículos ─────────────────────────────────────────────────────────────────

// CreateItem crea un artículo del catálogo. Si el SKU viene vacío se genera
// uno a partir del nombre; si viene dado y ya existe, ErrDuplicate.
func (uc *UseCase) CreateItem(ctx context.Context, actingUserID string, in dto.CreateItemRequest) (*dto.ItemDTO, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	sku := in.SKU
	if sku == "" {
		sku = generateSKU(in.Name)
	} else {
		existing, _ := uc.itemRepo.GetBySKU(sku)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	item := &entity.Item{
		ID:                  uuid.New().String(),
		CategoryID:          in.CategoryID,
		Name:                in.Name,
		SKU:                 sku,
		DefaultSellingPrice: in.DefaultSellingPrice,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionCreate, "Item", item.ID,
		fmt.Sprintf("%s (%s)", item.Name, item.SKU))
	return toItemDTO(item), nil
}

// GetItem obtiene un artículo por ID.
func (uc *UseCase) GetItem(ctx context.Context, id string) (*dto.ItemDTO, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemDTO(item), nil
}

// ListItems lista todos los artículos del catálogo.
func (uc *UseCase) ListItems(ctx context.Context) ([]dto.ItemDTO, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, err
	}
	return itemsToDTO(items), nil
}

// ListItemsByCategory lista los artículos de una categoría.
func (uc *UseCase) ListItemsByCategory(ctx context.Context, categoryID string) ([]dto.ItemDTO, error) {
	items, err := uc.itemRepo.ListByCategory(categoryID)
	if err != nil {
		return nil, err
	}
	return itemsToDTO(items), nil
}

// UpdateItem actualiza nombre, categoría, SKU y precio por defecto.
func (uc *UseCase) UpdateItem(ctx context.Context, actingUserID, id string, in dto.UpdateItemRequest) (*dto.ItemDTO, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != item.SKU {
		existing, _ := uc.itemRepo.GetBySKU(in.SKU)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrDuplicate
		}
	}
	item.CategoryID = in.CategoryID
	item.Name = in.Name
	item.SKU = in.SKU
	item.DefaultSellingPrice = in.DefaultSellingPrice
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionUpdate, "Item", item.ID,
		fmt.Sprintf("%s (%s)", item.Name, item.SKU))
	return toItemDTO(item), nil
}

// ── Leads ─────────────────────────────────────────────────────────────────────

// CreateLead registra un lead nuevo en el pipeline. Status y Priority vacíos
// arrancan en new/medium.
func (uc *UseCase) CreateLead(ctx context.Context, actingUserID string, in dto.LeadRequest) (*dto.LeadDTO, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    in.Status,
		Priority:  in.Priority,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if lead.Status == "" {
		lead.Status = entity.LeadStatusNew
	}
	if lead.Priority == "" {
		lead.Priority = entity.LeadPriorityMedium
	}
	applyLeadOptionals(lead, in)
	if err := uc.leadRepo.Create(lead); err != nil {
		return nil, err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionCreate, "Lead", lead.ID, lead.Name)
	return toLeadDTO(lead), nil
}

// ListLeads lista todos los leads.
func (uc *UseCase) ListLeads(ctx context.Context) ([]dto.LeadDTO, error) {
	leads, err := uc.leadRepo.List()
	if err != nil {
		return nil, err
	}
	return leadsToDTO(leads), nil
}

// ListFollowUpsDue lista los leads abiertos con seguimiento vencido o que
// vence hoy.
func (uc *UseCase) ListFollowUpsDue(ctx context.Context) ([]dto.LeadDTO, error) {
	leads, err := uc.leadRepo.ListFollowUpsDue(time.Now())
	if err != nil {
		return nil, err
	}
	return leadsToDTO(leads), nil
}

// UpdateLead actualiza los datos y el estado del lead.
func (uc *UseCase) UpdateLead(ctx context.Context, actingUserID, id string, in dto.LeadRequest) (*dto.LeadDTO, error) {
	if err := validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	lead, err := uc.leadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	lead.Name = in.Name
	lead.Email = in.Email
	lead.Phone = in.Phone
	lead.Notes = in.Notes
	if in.Status != "" {
		lead.Status = in.Status
	}
	if in.Priority != "" {
		lead.Priority = in.Priority
	}
	lead.ItemID = nil
	lead.FollowUpDate = nil
	applyLeadOptionals(lead, in)
	lead.UpdatedAt = time.Now()
	if err := uc.leadRepo.Update(lead); err != nil {
		return nil, err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionUpdate, "Lead", lead.ID,
		fmt.Sprintf("%s status=%s", lead.Name, lead.Status))
	return toLeadDTO(lead), nil
}

// DeleteLead elimina un lead del pipeline.
func (uc *UseCase) DeleteLead(ctx context.Context, actingUserID, id string) error {
	lead, err := uc.leadRepo.GetByID(id)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	if err := uc.leadRepo.Delete(id); err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionDelete, "Lead", id, lead.Name)
	return nil
}

// applyLeadOptionals copia item de interés y fecha de seguimiento si vienen.
func applyLeadOptionals(lead *entity.Lead, in dto.LeadRequest) {
	if in.ItemID != "" {
		itemID := in.ItemID
		lead.ItemID = &itemID
	}
	if in.FollowUpDate != "" {
		if d, err := time.Parse("2006-01-02", in.FollowUpDate); err == nil {
			lead.FollowUpDate = &d
		}
	}
}

// generateSKU arma un SKU a partir del nombre: prefijo alfanumérico en
// mayúsculas + sufijo corto aleatorio. Ej: "Nevera Inox 300" → "NEV-1A2B3C4D".
func generateSKU(name string) string {
	prefix := make([]byte, 0, 3)
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			prefix = append(prefix, byte(r))
			if len(prefix) == 3 {
				break
			}
		}
	}
	if len(prefix) == 0 {
		prefix = []byte("SKU")
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return string(prefix) + "-" + suffix
}

// ── Mapeo a DTOs ──────────────────────────────────────────────────────────────

func toCategoryDTO(c *entity.Category) *dto.CategoryDTO {
	return &dto.CategoryDTO{ID: c.ID, Name: c.Name, Status: c.Status}
}

func toItemDTO(i *entity.Item) *dto.ItemDTO {
	return &dto.ItemDTO{
		ID:                  i.ID,
		CategoryID:          i.CategoryID,
		Name:                i.Name,
		SKU:                 i.SKU,
		DefaultSellingPrice: i.DefaultSellingPrice,
	}
}

func itemsToDTO(items []*entity.Item) []dto.ItemDTO {
	out := make([]dto.ItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, *toItemDTO(i))
	}
	return out
}

func toLeadDTO(l *entity.Lead) *dto.LeadDTO {
	d := &dto.LeadDTO{
		ID:       l.ID,
		Name:     l.Name,
		Email:    l.Email,
		Phone:    l.Phone,
		Status:   l.Status,
		Priority: l.Priority,
		Notes:    l.Notes,
	}
	if l.ItemID != nil {
		d.ItemID = *l.ItemID
	}
	if l.FollowUpDate != nil {
		d.FollowUpDate = l.FollowUpDate.Format("2006-01-02")
	}
	return d
}

func leadsToDTO(leads []*entity.Lead) []dto.LeadDTO {
	out := make([]dto.LeadDTO, 0, len(leads))
	for _, l := range leads {
		out = append(out, *toLeadDTO(l))
	}
	return out
}
