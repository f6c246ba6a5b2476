package stock

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pro/internal/application/audit"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items  map[string]*entity.Item
	users  map[string]*entity.User
	lots   []entity.InventoryLot
	asgs   []entity.Assignment
	sales  []entity.Sale
	audits []entity.AuditLog
}

type memItemRepo struct{ s *memStore }

func (r *memItemRepo) Create(i *entity.Item) error               { r.s.items[i.ID] = i; return nil }
func (r *memItemRepo) GetByID(id string) (*entity.Item, error)   { return r.s.items[id], nil }
func (r *memItemRepo) GetBySKU(sku string) (*entity.Item, error) { return nil, nil }
func (r *memItemRepo) Update(i *entity.Item) error               { r.s.items[i.ID] = i; return nil }
func (r *memItemRepo) UpdateDefaultSellingPrice(itemID string, price decimal.Decimal) error {
	if i, ok := r.s.items[itemID]; ok {
		i.DefaultSellingPrice = price
	}
	return nil
}
func (r *memItemRepo) ListByCategory(string) ([]*entity.Item, error) { return nil, nil }
func (r *memItemRepo) List() ([]*entity.Item, error)                 { return nil, nil }
func (r *memItemRepo) Delete(id string) error                        { delete(r.s.items, id); return nil }

type memLotRepo struct{ s *memStore }

func (r *memLotRepo) Create(l *entity.InventoryLot) error {
	r.s.lots = append(r.s.lots, *l)
	return nil
}
func (r *memLotRepo) ListByItem(itemID string) ([]entity.InventoryLot, error) {
	var out []entity.InventoryLot
	for _, l := range r.s.lots {
		if l.ItemID == itemID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *memLotRepo) FirstByItem(itemID string) (*entity.InventoryLot, error) {
	for _, l := range r.s.lots {
		if l.ItemID == itemID {
			lot := l
			return &lot, nil
		}
	}
	return nil, nil
}
func (r *memLotRepo) UpdatePricesByItem(itemID string, cost, selling decimal.Decimal) error {
	for i := range r.s.lots {
		if r.s.lots[i].ItemID == itemID {
			r.s.lots[i].CostPrice = cost
			r.s.lots[i].SellingPrice = selling
		}
	}
	return nil
}
func (r *memLotRepo) DeleteByItem(itemID string) error {
	var kept []entity.InventoryLot
	for _, l := range r.s.lots {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	r.s.lots = kept
	return nil
}

type memAsgRepo struct{ s *memStore }

func (r *memAsgRepo) Create(a *entity.Assignment) error {
	r.s.asgs = append(r.s.asgs, *a)
	return nil
}
func (r *memAsgRepo) ListByItem(itemID string) ([]entity.Assignment, error) {
	var out []entity.Assignment
	for _, a := range r.s.asgs {
		if a.ItemID == itemID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *memAsgRepo) ListByAdmin(adminUserID string) ([]entity.Assignment, error) {
	return nil, nil
}
func (r *memAsgRepo) ExistsByItem(itemID string) (bool, error) {
	for _, a := range r.s.asgs {
		if a.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales = append(r.s.sales, *sale)
	return nil
}
func (r *memSaleRepo) ListByItem(itemID string) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.s.sales {
		if s.ItemID == itemID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memSaleRepo) ListByAdmin(string) ([]entity.Sale, error) { return nil, nil }
func (r *memSaleRepo) List() ([]entity.Sale, error)              { return r.s.sales, nil }

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error             { r.s.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.s.users[id], nil }
func (r *memUserRepo) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r *memUserRepo) ListAdmins() ([]*entity.User, error)     { return nil, nil }

type memAuditRepo struct{ s *memStore }

func (r *memAuditRepo) Append(e *entity.AuditLog) error {
	r.s.audits = append(r.s.audits, *e)
	return nil
}
func (r *memAuditRepo) ListRecent(int) ([]entity.AuditLogView, error) { return nil, nil }

type memTx struct{ s *memStore }

func (r *memTx) Run(ctx context.Context, fn func(
	repository.ItemRepository,
	repository.LotRepository,
	repository.AssignmentRepository,
	repository.SaleRepository,
) error) error {
	return fn(&memItemRepo{r.s}, &memLotRepo{r.s}, &memAsgRepo{r.s}, &memSaleRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

var (
	itemID  = uuid.New().String()
	adminID = uuid.New().String()
	superID = uuid.New().String()
)

func setup() (*memStore, *UseCase) {
	s := &memStore{
		items: map[string]*entity.Item{
			itemID: {
				ID: itemID, Name: "Lavadora Turbo", SKU: "LAV-001",
				DefaultSellingPrice: decimal.NewFromInt(120),
			},
		},
		users: map[string]*entity.User{
			adminID: {ID: adminID, Name: "Ana", Role: entity.RoleAdmin},
		},
	}
	recorder := audit.NewRecorder(&memAuditRepo{s}, logger.Nop())
	uc := NewUseCase(&memTx{s}, &memItemRepo{s}, &memLotRepo{s}, &memAsgRepo{s}, &memSaleRepo{s}, &memUserRepo{s}, recorder)
	return s, uc
}

func addLot(s *memStore, qty int) {
	s.lots = append(s.lots, entity.InventoryLot{
		ID: uuid.New().String(), ItemID: itemID, QtyPurchased: qty,
		CostPrice: decimal.NewFromInt(70), SellingPrice: decimal.NewFromInt(120),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// AddInventoryLot
// ──────────────────────────────────────────────────────────────────────────────

func TestAddInventoryLot_SiemprePermite(t *testing.T) {
	s, uc := setup()

	err := uc.AddInventoryLot(context.Background(), superID, dto.AddInventoryRequest{
		ItemID: itemID, Quantity: 40,
		CostPrice: decimal.NewFromInt(70), SellingPrice: decimal.NewFromInt(120),
	})
	require.NoError(t, err)
	require.Len(t, s.lots, 1)
	assert.Equal(t, 40, s.lots[0].QtyPurchased)
	assert.False(t, s.lots[0].IsAdjustment())

	require.Len(t, s.audits, 1)
	assert.Equal(t, entity.AuditActionCreate, s.audits[0].Action)
}

func TestAddInventoryLot_PrecioNegativo(t *testing.T) {
	_, uc := setup()

	err := uc.AddInventoryLot(context.Background(), superID, dto.AddInventoryRequest{
		ItemID: itemID, Quantity: 10, CostPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddInventoryLot_ItemInexistente(t *testing.T) {
	_, uc := setup()

	err := uc.AddInventoryLot(context.Background(), superID, dto.AddInventoryRequest{
		ItemID: uuid.New().String(), Quantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AssignStock
// ──────────────────────────────────────────────────────────────────────────────

func TestAssignStock_DescuentaDelGlobal(t *testing.T) {
	s, uc := setup()
	addLot(s, 100)

	err := uc.AssignStock(context.Background(), superID, dto.AssignStockRequest{
		ItemID: itemID, AdminUserID: adminID, Quantity: 30,
	})
	require.NoError(t, err)

	require.Len(t, s.asgs, 1)
	assert.Equal(t, 30, s.asgs[0].QtyAssigned)
	assert.Equal(t, s.lots[0].ID, s.asgs[0].SourceLotID,
		"source_lot_id referencia un lote existente del item")

	require.Len(t, s.audits, 1)
	assert.Equal(t, entity.AuditActionAssign, s.audits[0].Action)
}

func TestAssignStock_RechazaSobreAsignacion(t *testing.T) {
	s, uc := setup()
	addLot(s, 20)

	err := uc.AssignStock(context.Background(), superID, dto.AssignStockRequest{
		ItemID: itemID, AdminUserID: adminID, Quantity: 30,
	})
	assert.ErrorIs(t, err, domain.ErrNotEnoughGlobalStock)
	assert.Empty(t, s.asgs)
}

// Sin lotes el disponible global es cero: la guardia corta antes de buscar
// el lote fuente.
func TestAssignStock_SinLotes(t *testing.T) {
	s, uc := setup()

	err := uc.AssignStock(context.Background(), superID, dto.AssignStockRequest{
		ItemID: itemID, AdminUserID: adminID, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotEnoughGlobalStock)
	assert.Empty(t, s.asgs)
}

func TestAssignStock_DestinoNoEsAdmin(t *testing.T) {
	s, uc := setup()
	addLot(s, 100)

	err := uc.AssignStock(context.Background(), superID, dto.AssignStockRequest{
		ItemID: itemID, AdminUserID: uuid.New().String(), Quantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustInventoryQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjust_CreaLoteCompensatorio(t *testing.T) {
	s, uc := setup()
	addLot(s, 100)

	err := uc.AdjustInventoryQuantity(context.Background(), superID, dto.AdjustQuantityRequest{
		ItemID: itemID, Adjustment: -8, Reason: "merma en bodega",
	})
	require.NoError(t, err)

	require.Len(t, s.lots, 2, "el ajuste es un lote nuevo, no una mutación")
	adj := s.lots[1]
	assert.Equal(t, -8, adj.QtyPurchased)
	assert.True(t, adj.IsAdjustment(), "el lote compensatorio lleva precios en cero")

	require.Len(t, s.audits, 1)
	assert.Equal(t, entity.AuditActionAdjust, s.audits[0].Action)
	assert.Contains(t, s.audits[0].Detail, "merma en bodega")
}

func TestAdjust_SinRazon(t *testing.T) {
	_, uc := setup()

	err := uc.AdjustInventoryQuantity(context.Background(), superID, dto.AdjustQuantityRequest{
		ItemID: itemID, Adjustment: -1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// No hay guardia aritmética: el ajuste puede dejar el agregado negativo.
func TestAdjust_PuedeDejarNegativo(t *testing.T) {
	s, uc := setup()
	addLot(s, 5)

	err := uc.AdjustInventoryQuantity(context.Background(), superID, dto.AdjustQuantityRequest{
		ItemID: itemID, Adjustment: -9, Reason: "conteo físico",
	})
	require.NoError(t, err)

	out, err := uc.ItemStock(context.Background(), itemID)
	require.NoError(t, err)
	assert.Equal(t, -4, out.TotalPurchased)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateInventory_RepreciaTodosLosLotes(t *testing.T) {
	s, uc := setup()
	addLot(s, 50)
	addLot(s, 30)

	newCost := decimal.NewFromInt(75)
	newSelling := decimal.NewFromInt(130)
	err := uc.UpdateInventory(context.Background(), superID, itemID, dto.UpdateInventoryRequest{
		CostPrice: newCost, SellingPrice: newSelling,
	})
	require.NoError(t, err)

	for _, l := range s.lots {
		assert.True(t, newCost.Equal(l.CostPrice), "todos los lotes se reprecian")
		assert.True(t, newSelling.Equal(l.SellingPrice))
	}
	assert.True(t, newSelling.Equal(s.items[itemID].DefaultSellingPrice),
		"el precio por defecto del item acompaña el reprecio")
}

// ──────────────────────────────────────────────────────────────────────────────
// DeleteInventoryItem
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteInventoryItem_BorraLotes(t *testing.T) {
	s, uc := setup()
	addLot(s, 50)

	err := uc.DeleteInventoryItem(context.Background(), superID, itemID)
	require.NoError(t, err)
	assert.Empty(t, s.lots)
	assert.NotNil(t, s.items[itemID], "la fila del item queda intacta")
}

func TestDeleteInventoryItem_RechazaConAsignaciones(t *testing.T) {
	s, uc := setup()
	addLot(s, 50)
	s.asgs = append(s.asgs, entity.Assignment{
		ID: uuid.New().String(), ItemID: itemID, AdminUserID: adminID, QtyAssigned: 10,
	})

	err := uc.DeleteInventoryItem(context.Background(), superID, itemID)
	assert.ErrorIs(t, err, domain.ErrItemHasAssignments)
	assert.Len(t, s.lots, 1, "nada se borra cuando la guardia rechaza")
}
