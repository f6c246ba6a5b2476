package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pro/internal/application/audit"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type catStore struct {
	categories map[string]*entity.Category
	items      map[string]*entity.Item
	leads      map[string]*entity.Lead
	audits     []entity.AuditLog
}

type catCategoryRepo struct{ s *catStore }

func (r *catCategoryRepo) Create(c *entity.Category) error { r.s.categories[c.ID] = c; return nil }
func (r *catCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.s.categories[id], nil
}
func (r *catCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	return out, nil
}
func (r *catCategoryRepo) Update(c *entity.Category) error { r.s.categories[c.ID] = c; return nil }
func (r *catCategoryRepo) Delete(id string) error          { delete(r.s.categories, id); return nil }

type catItemRepo struct{ s *catStore }

func (r *catItemRepo) Create(i *entity.Item) error             { r.s.items[i.ID] = i; return nil }
func (r *catItemRepo) GetByID(id string) (*entity.Item, error) { return r.s.items[id], nil }
func (r *catItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, i := range r.s.items {
		if i.SKU == sku {
			return i, nil
		}
	}
	return nil, nil
}
func (r *catItemRepo) Update(i *entity.Item) error { r.s.items[i.ID] = i; return nil }
func (r *catItemRepo) UpdateDefaultSellingPrice(string, decimal.Decimal) error {
	return nil
}
func (r *catItemRepo) ListByCategory(categoryID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.CategoryID == categoryID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *catItemRepo) List() ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		out = append(out, i)
	}
	return out, nil
}
func (r *catItemRepo) Delete(id string) error { delete(r.s.items, id); return nil }

type catLeadRepo struct{ s *catStore }

func (r *catLeadRepo) Create(l *entity.Lead) error             { r.s.leads[l.ID] = l; return nil }
func (r *catLeadRepo) GetByID(id string) (*entity.Lead, error) { return r.s.leads[id], nil }
func (r *catLeadRepo) List() ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.s.leads {
		out = append(out, l)
	}
	return out, nil
}
func (r *catLeadRepo) Update(l *entity.Lead) error { r.s.leads[l.ID] = l; return nil }
func (r *catLeadRepo) ListFollowUpsDue(until time.Time) ([]*entity.Lead, error) {
	var out []*entity.Lead
	for _, l := range r.s.leads {
		if l.Status == entity.LeadStatusWon || l.Status == entity.LeadStatusLost {
			continue
		}
		if l.FollowUpDate != nil && !l.FollowUpDate.After(until) {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *catLeadRepo) Delete(id string) error { delete(r.s.leads, id); return nil }

type catAuditRepo struct{ s *catStore }

func (r *catAuditRepo) Append(e *entity.AuditLog) error {
	r.s.audits = append(r.s.audits, *e)
	return nil
}
func (r *catAuditRepo) ListRecent(int) ([]entity.AuditLogView, error) { return nil, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

var actorID = uuid.New().String()

func setup() (*catStore, *UseCase, string) {
	s := &catStore{
		categories: make(map[string]*entity.Category),
		items:      make(map[string]*entity.Item),
		leads:      make(map[string]*entity.Lead),
	}
	categoryID := uuid.New().String()
	s.categories[categoryID] = &entity.Category{ID: categoryID, Name: "Electrodomésticos", Status: "active"}

	recorder := audit.NewRecorder(&catAuditRepo{s}, logger.Nop())
	uc := NewUseCase(&catCategoryRepo{s}, &catItemRepo{s}, &catLeadRepo{s}, recorder)
	return s, uc, categoryID
}

// ──────────────────────────────────────────────────────────────────────────────
// Items
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItem_GeneraSKUCuandoFalta(t *testing.T) {
	_, uc, categoryID := setup()

	out, err := uc.CreateItem(context.Background(), actorID, dto.CreateItemRequest{
		CategoryID:          categoryID,
		Name:                "Nevera Inox 300",
		DefaultSellingPrice: decimal.NewFromInt(80),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.SKU, "NEV-"),
		"el SKU generado arranca con el prefijo del nombre: %s", out.SKU)
	assert.Len(t, out.SKU, 12)
}

func TestCreateItem_RespetaSKUDado(t *testing.T) {
	_, uc, categoryID := setup()

	out, err := uc.CreateItem(context.Background(), actorID, dto.CreateItemRequest{
		CategoryID: categoryID, Name: "Nevera", SKU: "NEV-CUSTOM",
	})
	require.NoError(t, err)
	assert.Equal(t, "NEV-CUSTOM", out.SKU)
}

func TestCreateItem_SKUDuplicado(t *testing.T) {
	_, uc, categoryID := setup()

	_, err := uc.CreateItem(context.Background(), actorID, dto.CreateItemRequest{
		CategoryID: categoryID, Name: "Nevera", SKU: "NEV-001",
	})
	require.NoError(t, err)

	_, err = uc.CreateItem(context.Background(), actorID, dto.CreateItemRequest{
		CategoryID: categoryID, Name: "Otra Nevera", SKU: "NEV-001",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateItem_CategoriaInexistente(t *testing.T) {
	_, uc, _ := setup()

	_, err := uc.CreateItem(context.Background(), actorID, dto.CreateItemRequest{
		CategoryID: uuid.New().String(), Name: "Nevera",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCategory_RechazaConItems(t *testing.T) {
	s, uc, categoryID := setup()
	itemID := uuid.New().String()
	s.items[itemID] = &entity.Item{ID: itemID, CategoryID: categoryID, Name: "Nevera"}

	err := uc.DeleteCategory(context.Background(), actorID, categoryID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.NotNil(t, s.categories[categoryID])
}

func TestDeleteCategory_SinItems(t *testing.T) {
	s, uc, categoryID := setup()

	err := uc.DeleteCategory(context.Background(), actorID, categoryID)
	require.NoError(t, err)
	assert.Nil(t, s.categories[categoryID])

	require.Len(t, s.audits, 1)
	assert.Equal(t, entity.AuditActionDelete, s.audits[0].Action)
}

// ──────────────────────────────────────────────────────────────────────────────
// Leads
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateLead_DefaultsDePipeline(t *testing.T) {
	_, uc, _ := setup()

	out, err := uc.CreateLead(context.Background(), actorID, dto.LeadRequest{
		Name: "Carlos Prospecto", Phone: "3001234567",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusNew, out.Status)
	assert.Equal(t, entity.LeadPriorityMedium, out.Priority)
}

func TestListFollowUpsDue_ExcluyeCerradosYFuturos(t *testing.T) {
	s, uc, _ := setup()
	yesterday := time.Now().AddDate(0, 0, -1)
	nextWeek := time.Now().AddDate(0, 0, 7)

	vencido := &entity.Lead{ID: uuid.New().String(), Name: "Vencido",
		Status: entity.LeadStatusContacted, FollowUpDate: &yesterday}
	futuro := &entity.Lead{ID: uuid.New().String(), Name: "Futuro",
		Status: entity.LeadStatusNew, FollowUpDate: &nextWeek}
	ganado := &entity.Lead{ID: uuid.New().String(), Name: "Ganado",
		Status: entity.LeadStatusWon, FollowUpDate: &yesterday}
	for _, l := range []*entity.Lead{vencido, futuro, ganado} {
		s.leads[l.ID] = l
	}

	out, err := uc.ListFollowUpsDue(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Vencido", out[0].Name)
}

func TestUpdateLead_TransicionDeEstado(t *testing.T) {
	s, uc, _ := setup()

	created, err := uc.CreateLead(context.Background(), actorID, dto.LeadRequest{
		Name: "Carlos Prospecto",
	})
	require.NoError(t, err)

	out, err := uc.UpdateLead(context.Background(), actorID, created.ID, dto.LeadRequest{
		Name: "Carlos Prospecto", Status: entity.LeadStatusQualified, Priority: entity.LeadPriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusQualified, out.Status)
	assert.Equal(t, entity.LeadPriorityHigh, out.Priority)
	assert.Equal(t, entity.LeadStatusQualified, s.leads[created.ID].Status)
}
