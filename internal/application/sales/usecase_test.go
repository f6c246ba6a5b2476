package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pro/internal/application/audit"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore guarda todas las filas en memoria; los repos fake comparten el
// mismo store, igual que los repos reales comparten la misma base.
type fakeStore struct {
	items    map[string]*entity.Item
	users    map[string]*entity.User
	lots     []entity.InventoryLot
	asgs     []entity.Assignment
	sales    []entity.Sale
	credits  []entity.CreditSale
	payments []entity.CreditPayment
	audits   []entity.AuditLog

	auditErr      error // si está seteado, Append falla
	schemaEnsured bool
}

func newStore() *fakeStore {
	return &fakeStore{
		items: make(map[string]*entity.Item),
		users: make(map[string]*entity.User),
	}
}

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *entity.Item) error { r.s.items[item.ID] = item; return nil }
func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.s.items[id], nil
}
func (r *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, i := range r.s.items {
		if i.SKU == sku {
			return i, nil
		}
	}
	return nil, nil
}
func (r *fakeItemRepo) Update(item *entity.Item) error { r.s.items[item.ID] = item; return nil }
func (r *fakeItemRepo) UpdateDefaultSellingPrice(itemID string, price decimal.Decimal) error {
	if i, ok := r.s.items[itemID]; ok {
		i.DefaultSellingPrice = price
	}
	return nil
}
func (r *fakeItemRepo) ListByCategory(categoryID string) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		if i.CategoryID == categoryID {
			out = append(out, i)
		}
	}
	return out, nil
}
func (r *fakeItemRepo) List() ([]*entity.Item, error) {
	var out []*entity.Item
	for _, i := range r.s.items {
		out = append(out, i)
	}
	return out, nil
}
func (r *fakeItemRepo) Delete(id string) error { delete(r.s.items, id); return nil }

type fakeLotRepo struct{ s *fakeStore }

func (r *fakeLotRepo) Create(lot *entity.InventoryLot) error {
	r.s.lots = append(r.s.lots, *lot)
	return nil
}
func (r *fakeLotRepo) ListByItem(itemID string) ([]entity.InventoryLot, error) {
	var out []entity.InventoryLot
	for _, l := range r.s.lots {
		if l.ItemID == itemID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *fakeLotRepo) FirstByItem(itemID string) (*entity.InventoryLot, error) {
	for _, l := range r.s.lots {
		if l.ItemID == itemID {
			lot := l
			return &lot, nil
		}
	}
	return nil, nil
}
func (r *fakeLotRepo) UpdatePricesByItem(itemID string, costPrice, sellingPrice decimal.Decimal) error {
	for i := range r.s.lots {
		if r.s.lots[i].ItemID == itemID {
			r.s.lots[i].CostPrice = costPrice
			r.s.lots[i].SellingPrice = sellingPrice
		}
	}
	return nil
}
func (r *fakeLotRepo) DeleteByItem(itemID string) error {
	var kept []entity.InventoryLot
	for _, l := range r.s.lots {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	r.s.lots = kept
	return nil
}

type fakeAsgRepo struct{ s *fakeStore }

func (r *fakeAsgRepo) Create(a *entity.Assignment) error {
	r.s.asgs = append(r.s.asgs, *a)
	return nil
}
func (r *fakeAsgRepo) ListByItem(itemID string) ([]entity.Assignment, error) {
	var out []entity.Assignment
	for _, a := range r.s.asgs {
		if a.ItemID == itemID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAsgRepo) ListByAdmin(adminUserID string) ([]entity.Assignment, error) {
	var out []entity.Assignment
	for _, a := range r.s.asgs {
		if a.AdminUserID == adminUserID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *fakeAsgRepo) ExistsByItem(itemID string) (bool, error) {
	for _, a := range r.s.asgs {
		if a.ItemID == itemID {
			return true, nil
		}
	}
	return false, nil
}

type fakeSaleRepo struct{ s *fakeStore }

func (r *fakeSaleRepo) Create(sale *entity.Sale) error {
	r.s.sales = append(r.s.sales, *sale)
	return nil
}
func (r *fakeSaleRepo) ListByItem(itemID string) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.s.sales {
		if s.ItemID == itemID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) ListByAdmin(adminUserID string) ([]entity.Sale, error) {
	var out []entity.Sale
	for _, s := range r.s.sales {
		if s.AdminUserID == adminUserID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) List() ([]entity.Sale, error) { return r.s.sales, nil }

type fakeCreditRepo struct{ s *fakeStore }

func (r *fakeCreditRepo) EnsureSchema() error { r.s.schemaEnsured = true; return nil }
func (r *fakeCreditRepo) CreateSale(c *entity.CreditSale) error {
	r.s.credits = append(r.s.credits, *c)
	return nil
}
func (r *fakeCreditRepo) CreatePayment(p *entity.CreditPayment) error {
	r.s.payments = append(r.s.payments, *p)
	return nil
}
func (r *fakeCreditRepo) GetSaleByID(id string) (*entity.CreditSale, error) {
	for _, c := range r.s.credits {
		if c.ID == id {
			credit := c
			return &credit, nil
		}
	}
	return nil, nil
}
func (r *fakeCreditRepo) ListSales() ([]entity.CreditSale, error) { return r.s.credits, nil }
func (r *fakeCreditRepo) ListSalesByAdmin(adminUserID string) ([]entity.CreditSale, error) {
	var out []entity.CreditSale
	for _, c := range r.s.credits {
		if c.AdminUserID == adminUserID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *fakeCreditRepo) ListPaymentsBySale(creditSaleID string) ([]entity.CreditPayment, error) {
	var out []entity.CreditPayment
	for _, p := range r.s.payments {
		if p.CreditSaleID == creditSaleID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeCreditRepo) MarkCompleted(id string) error {
	for i := range r.s.credits {
		if r.s.credits[i].ID == id {
			r.s.credits[i].Status = entity.CreditStatusCompleted
			r.s.credits[i].PendingBalance = decimal.Zero
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(u *entity.User) error { r.s.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.s.users[id], nil
}
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) ListAdmins() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.s.users {
		if u.Role == entity.RoleAdmin {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeAuditRepo struct{ s *fakeStore }

func (r *fakeAuditRepo) Append(entry *entity.AuditLog) error {
	if r.s.auditErr != nil {
		return r.s.auditErr
	}
	r.s.audits = append(r.s.audits, *entry)
	return nil
}
func (r *fakeAuditRepo) ListRecent(limit int) ([]entity.AuditLogView, error) {
	var out []entity.AuditLogView
	for i := len(r.s.audits) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, entity.AuditLogView{AuditLog: r.s.audits[i]})
	}
	return out, nil
}

// fakeTx ejecuta los callbacks sin transacción real: los fakes escriben
// directo al store compartido.
type fakeTx struct{ s *fakeStore }

func (r *fakeTx) Run(ctx context.Context, fn func(
	repository.ItemRepository,
	repository.LotRepository,
	repository.AssignmentRepository,
	repository.SaleRepository,
) error) error {
	return fn(&fakeItemRepo{r.s}, &fakeLotRepo{r.s}, &fakeAsgRepo{r.s}, &fakeSaleRepo{r.s})
}

func (r *fakeTx) RunCredit(ctx context.Context, fn func(
	repository.CreditRepository,
	repository.SaleRepository,
) error) error {
	return fn(&fakeCreditRepo{r.s}, &fakeSaleRepo{r.s})
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

var (
	testItemID  = uuid.New().String()
	testAdminID = uuid.New().String()
	testSuperID = uuid.New().String()
)

// seedStore crea un item a $80 y un admin, sin stock.
func seedStore() *fakeStore {
	s := newStore()
	s.items[testItemID] = &entity.Item{
		ID:                  testItemID,
		CategoryID:          uuid.New().String(),
		Name:                "Nevera Inox 300",
		SKU:                 "NEV-001",
		DefaultSellingPrice: decimal.NewFromInt(80),
	}
	s.users[testAdminID] = &entity.User{
		ID: testAdminID, Name: "Ana Admin", Email: "ana@ventas.pro",
		Role: entity.RoleAdmin, Status: "active",
	}
	s.users[testSuperID] = &entity.User{
		ID: testSuperID, Name: "Sofía Super", Email: "sofia@ventas.pro",
		Role: entity.RoleSuperadmin, Status: "active",
	}
	return s
}

func newSalesUC(s *fakeStore) *UseCase {
	recorder := audit.NewRecorder(&fakeAuditRepo{s}, logger.Nop())
	return NewUseCase(&fakeTx{s}, &fakeItemRepo{s}, &fakeAsgRepo{s}, &fakeSaleRepo{s}, &fakeCreditRepo{s}, recorder)
}

func newStockUC(s *fakeStore) *stock.UseCase {
	recorder := audit.NewRecorder(&fakeAuditRepo{s}, logger.Nop())
	return stock.NewUseCase(&fakeTx{s}, &fakeItemRepo{s}, &fakeLotRepo{s}, &fakeAsgRepo{s}, &fakeSaleRepo{s}, &fakeUserRepo{s}, recorder)
}

// giveStock agrega un lote y asigna qty al admin de prueba.
func giveStock(t *testing.T, s *fakeStore, purchased, assigned int) {
	t.Helper()
	s.lots = append(s.lots, entity.InventoryLot{
		ID: uuid.New().String(), ItemID: testItemID, QtyPurchased: purchased,
		CostPrice: decimal.NewFromInt(50), SellingPrice: decimal.NewFromInt(80),
	})
	if assigned > 0 {
		s.asgs = append(s.asgs, entity.Assignment{
			ID: uuid.New().String(), ItemID: testItemID,
			AdminUserID: testAdminID, QtyAssigned: assigned,
		})
	}
}

func saleReq(qty int) dto.RecordSaleRequest {
	return dto.RecordSaleRequest{
		ItemID:       testItemID,
		Quantity:     qty,
		CustomerName: "Carlos Cliente",
	}
}

func creditReq(paymentType string) dto.RecordCreditSaleRequest {
	req := dto.RecordCreditSaleRequest{
		ItemID:         testItemID,
		CustomerName:   "Carlos Cliente",
		CustomerEmail:  "carlos@example.com",
		CustomerPhone:  "3001234567",
		TotalPrice:     decimal.NewFromInt(80),
		DownPayment:    decimal.NewFromInt(20),
		PaymentType:    paymentType,
		PendingBalance: decimal.NewFromInt(60),
	}
	if paymentType == entity.PaymentTypeEMI {
		req.EMIPeriods = 3
		req.MonthlyEMI = decimal.NewFromInt(20)
	} else {
		req.PayLaterDate = "1_month"
	}
	return req
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_UsaPrecioDelServidor(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 30)
	uc := newSalesUC(s)

	err := uc.RecordSale(context.Background(), testAdminID, saleReq(5))
	require.NoError(t, err)

	require.Len(t, s.sales, 1)
	sale := s.sales[0]
	assert.Equal(t, 5, sale.QtySold)
	assert.True(t, decimal.NewFromInt(80).Equal(sale.UnitPrice),
		"el precio unitario se relee del item, no del request")
	assert.True(t, decimal.NewFromInt(400).Equal(sale.TotalPrice))

	require.Len(t, s.audits, 1)
	assert.Equal(t, entity.AuditActionSell, s.audits[0].Action)
}

func TestRecordSale_RechazaSobreVenta(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 3)
	uc := newSalesUC(s)

	err := uc.RecordSale(context.Background(), testAdminID, saleReq(5))
	assert.ErrorIs(t, err, domain.ErrNotEnoughAdminStock)
	assert.Empty(t, s.sales, "la venta rechazada no deja fila")
	assert.Empty(t, s.audits, "la venta rechazada no deja bitácora")
}

func TestRecordSale_ItemInexistente(t *testing.T) {
	s := seedStore()
	uc := newSalesUC(s)

	req := saleReq(1)
	req.ItemID = uuid.New().String()
	err := uc.RecordSale(context.Background(), testAdminID, req)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordSale_EntradaInvalida(t *testing.T) {
	s := seedStore()
	uc := newSalesUC(s)

	req := saleReq(1)
	req.CustomerName = ""
	err := uc.RecordSale(context.Background(), testAdminID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// La operación principal sobrevive al fallo de bitácora: el insert de la
// venta persiste y la llamada devuelve éxito.
func TestRecordSale_BitacoraFallida_NoRevierte(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 30)
	s.auditErr = errors.New("conexión rota")
	uc := newSalesUC(s)

	err := uc.RecordSale(context.Background(), testAdminID, saleReq(2))
	require.NoError(t, err, "el fallo de bitácora no debe propagarse")
	assert.Len(t, s.sales, 1, "la venta queda persistida")
	assert.Empty(t, s.audits)
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordCreditSale
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordCreditSale_EMI_EspejoYCronograma(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 30)
	uc := newSalesUC(s)

	err := uc.RecordCreditSale(context.Background(), testAdminID, creditReq(entity.PaymentTypeEMI))
	require.NoError(t, err)

	assert.True(t, s.schemaEnsured, "el esquema de crédito se asegura dentro de la tx")

	require.Len(t, s.credits, 1)
	credit := s.credits[0]
	assert.Equal(t, entity.CreditStatusActive, credit.Status)
	assert.True(t, decimal.NewFromInt(60).Equal(credit.PendingBalance))
	assert.Nil(t, credit.DueDate, "EMI no lleva fecha única de vencimiento")

	require.Len(t, s.payments, 3, "EMI de 3 periodos genera 3 cuotas")
	for i, p := range s.payments {
		assert.Equal(t, credit.ID, p.CreditSaleID)
		assert.Equal(t, i+1, p.InstallmentNo)
		assert.True(t, decimal.NewFromInt(20).Equal(p.AmountDue))
	}

	// Fila espejo: 1 unidad, unit = total = totalPrice, sin dirección.
	require.Len(t, s.sales, 1)
	mirror := s.sales[0]
	assert.Equal(t, 1, mirror.QtySold)
	assert.True(t, decimal.NewFromInt(80).Equal(mirror.UnitPrice))
	assert.True(t, decimal.NewFromInt(80).Equal(mirror.TotalPrice))
	assert.Nil(t, mirror.CustomerAddress)

	require.Len(t, s.audits, 1)
	assert.Equal(t, "Credit Sale (EMI)", s.audits[0].EntityType)
}

func TestRecordCreditSale_PayLater_ResuelveFecha(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 30)
	uc := newSalesUC(s)

	before := time.Now()
	err := uc.RecordCreditSale(context.Background(), testAdminID, creditReq(entity.PaymentTypePayLater))
	require.NoError(t, err)

	require.Len(t, s.credits, 1)
	credit := s.credits[0]
	require.NotNil(t, credit.DueDate, "pay_later lleva fecha resuelta")
	expected := before.AddDate(0, 1, 0)
	assert.WithinDuration(t, expected, *credit.DueDate, time.Minute)

	require.Len(t, s.payments, 1, "pay_later genera una sola cuota")
	assert.True(t, decimal.NewFromInt(60).Equal(s.payments[0].AmountDue))

	require.Len(t, s.audits, 1)
	assert.Equal(t, "Credit Sale (Pay Later)", s.audits[0].EntityType)
}

func TestRecordCreditSale_SinDisponible(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 0) // lote sin asignar: el admin no tiene cupo
	uc := newSalesUC(s)

	err := uc.RecordCreditSale(context.Background(), testAdminID, creditReq(entity.PaymentTypeEMI))
	assert.ErrorIs(t, err, domain.ErrNoAvailableStock)
	assert.Empty(t, s.credits)
	assert.Empty(t, s.sales, "sin crédito tampoco hay fila espejo")
}

// El crédito consume exactamente 1 unidad del cupo del admin sin importar
// el monto financiado.
func TestRecordCreditSale_ConsumeUnaUnidad(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 2)
	uc := newSalesUC(s)

	require.NoError(t, uc.RecordCreditSale(context.Background(), testAdminID, creditReq(entity.PaymentTypeEMI)))
	require.NoError(t, uc.RecordCreditSale(context.Background(), testAdminID, creditReq(entity.PaymentTypeEMI)))

	// Cupo agotado: la tercera se rechaza.
	err := uc.RecordCreditSale(context.Background(), testAdminID, creditReq(entity.PaymentTypeEMI))
	assert.ErrorIs(t, err, domain.ErrNoAvailableStock)
	assert.Len(t, s.credits, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// MarkCreditSaleCompleted
// ──────────────────────────────────────────────────────────────────────────────

func TestMarkCreditSaleCompleted_CierraElCredito(t *testing.T) {
	s := seedStore()
	giveStock(t, s, 100, 5)
	uc := newSalesUC(s)
	require.NoError(t, uc.RecordCreditSale(context.Background(), testAdminID, creditReq(entity.PaymentTypeEMI)))
	creditID := s.credits[0].ID
	s.audits = nil

	err := uc.MarkCreditSaleCompleted(context.Background(), testSuperID, creditID)
	require.NoError(t, err)

	assert.Equal(t, entity.CreditStatusCompleted, s.credits[0].Status)
	assert.True(t, s.credits[0].PendingBalance.IsZero())
	// El cronograma no se toca: las cuotas quedan tal como se generaron.
	assert.Len(t, s.payments, 3)

	require.Len(t, s.audits, 1)
	assert.Equal(t, entity.AuditActionUpdate, s.audits[0].Action)
}

func TestMarkCreditSaleCompleted_NoExiste(t *testing.T) {
	s := seedStore()
	uc := newSalesUC(s)

	err := uc.MarkCreditSaleCompleted(context.Background(), testSuperID, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: lote → asignación → venta → crédito
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto_LoteAsignacionVentaCredito(t *testing.T) {
	s := seedStore()
	stockUC := newStockUC(s)
	salesUC := newSalesUC(s)
	ctx := context.Background()

	// Lote de 100 unidades.
	require.NoError(t, stockUC.AddInventoryLot(ctx, testSuperID, dto.AddInventoryRequest{
		ItemID: testItemID, Quantity: 100,
		CostPrice: decimal.NewFromInt(50), SellingPrice: decimal.NewFromInt(80),
	}))

	// Asignación de 30 al admin.
	require.NoError(t, stockUC.AssignStock(ctx, testSuperID, dto.AssignStockRequest{
		ItemID: testItemID, AdminUserID: testAdminID, Quantity: 30,
	}))

	// Venta de contado: 5 unidades a $80.
	require.NoError(t, salesUC.RecordSale(ctx, testAdminID, saleReq(5)))

	// Crédito EMI: total 80, inicial 20, 3 cuotas de 20.
	require.NoError(t, salesUC.RecordCreditSale(ctx, testAdminID, creditReq(entity.PaymentTypeEMI)))

	// Estado del libro tras todo el flujo.
	itemStock, err := stockUC.ItemStock(ctx, testItemID)
	require.NoError(t, err)
	assert.Equal(t, 100, itemStock.TotalPurchased)
	assert.Equal(t, 30, itemStock.TotalAssigned)
	assert.Equal(t, 70, itemStock.GlobalAvailable)

	adminStock, err := stockUC.AdminStock(ctx, testAdminID, testItemID)
	require.NoError(t, err)
	assert.Equal(t, 30, adminStock.QtyAssigned)
	assert.Equal(t, 6, adminStock.QtySold, "5 de contado + 1 del crédito espejo")
	assert.Equal(t, 24, adminStock.AdminAvailable)

	// Cronograma del crédito: 3 cuotas de $20 = $60 pendientes.
	require.Len(t, s.payments, 3)
	total := decimal.Zero
	for _, p := range s.payments {
		total = total.Add(p.AmountDue)
	}
	assert.True(t, decimal.NewFromInt(60).Equal(total))

	// Bitácora: CREATE (lote), ASSIGN, SELL y CREATE (crédito).
	require.Len(t, s.audits, 4)
	actions := []string{s.audits[0].Action, s.audits[1].Action, s.audits[2].Action, s.audits[3].Action}
	assert.Equal(t, []string{
		entity.AuditActionCreate, entity.AuditActionAssign,
		entity.AuditActionSell, entity.AuditActionCreate,
	}, actions)
}
