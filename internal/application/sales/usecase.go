// Package sales implementa el registro de ventas de contado y a crédito.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-pro/internal/application/audit"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/ledger"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
	"github.com/jhoicas/ventas-pro/pkg/validate"
)

// UseCase agrupa las operaciones de venta. Los repos inyectados están atados
// al pool; la venta a crédito corre dentro de creditTx.
type UseCase struct {
	creditTx   CreditTxRunner
	itemRepo   repository.ItemRepository
	asgRepo    repository.AssignmentRepository
	saleRepo   repository.SaleRepository
	creditRepo repository.CreditRepository
	recorder   *audit.Recorder
}

// NewUseCase construye el caso de uso de ventas.
func NewUseCase(
	creditTx CreditTxRunner,
	itemRepo repository.ItemRepository,
	asgRepo repository.AssignmentRepository,
	saleRepo repository.SaleRepository,
	creditRepo repository.CreditRepository,
	recorder *audit.Recorder,
) *UseCase {
	return &UseCase{
		creditTx:   creditTx,
		itemRepo:   itemRepo,
		asgRepo:    asgRepo,
		saleRepo:   saleRepo,
		creditRepo: creditRepo,
		recorder:   recorder,
	}
}

// RecordSale registra una venta de contado de un admin.
//
// El precio unitario se relee del item en este momento (nunca se confía en
// el precio del cliente). Guardia: quantity ≤ disponible del admin,
// recalculado aquí plegando asignaciones y ventas.
//
// Es un único insert: la secuencia leer-agregados → comparar → insertar no
// está protegida contra una venta concurrente del mismo admin sobre el
// mismo item (limitación conocida, reproducida).
func (uc *UseCase) RecordSale(ctx context.Context, adminUserID string, in dto.RecordSaleRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(in.ItemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	assignments, err := uc.asgRepo.ListByItem(in.ItemID)
	if err != nil {
		return err
	}
	salesRows, err := uc.saleRepo.ListByItem(in.ItemID)
	if err != nil {
		return err
	}
	if in.Quantity > ledger.AdminAvailable(assignments, salesRows, adminUserID) {
		return domain.ErrNotEnoughAdminStock
	}

	// Precio vigente del servidor al momento de la venta.
	unitPrice := item.DefaultSellingPrice

	sale := &entity.Sale{
		ID:           uuid.New().String(),
		ItemID:       in.ItemID,
		AdminUserID:  adminUserID,
		QtySold:      in.Quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice.Mul(decimalFromInt(in.Quantity)),
		CustomerName: in.CustomerName,
		CreatedAt:    time.Now(),
	}
	if in.CustomerAddress != "" {
		sale.CustomerAddress = &in.CustomerAddress
	}
	if in.CustomerPhone != "" {
		sale.CustomerPhone = &in.CustomerPhone
	}

	if err := uc.saleRepo.Create(sale); err != nil {
		return err
	}
	uc.recorder.Record(adminUserID, entity.AuditActionSell, "Sale", sale.ID,
		fmt.Sprintf("qty=%d total=%s", in.Quantity, sale.TotalPrice))
	return nil
}

// SalesByAdmin lista las ventas registradas por un admin.
func (uc *UseCase) SalesByAdmin(ctx context.Context, adminUserID string) ([]dto.SaleDTO, error) {
	rows, err := uc.saleRepo.ListByAdmin(adminUserID)
	if err != nil {
		return nil, err
	}
	return salesToDTO(rows), nil
}

// AllSales lista todas las ventas (vista del superadmin).
func (uc *UseCase) AllSales(ctx context.Context) ([]dto.SaleDTO, error) {
	rows, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	return salesToDTO(rows), nil
}

func salesToDTO(rows []entity.Sale) []dto.SaleDTO {
	out := make([]dto.SaleDTO, 0, len(rows))
	for _, s := range rows {
		d := dto.SaleDTO{
			ID:           s.ID,
			ItemID:       s.ItemID,
			AdminUserID:  s.AdminUserID,
			QtySold:      s.QtySold,
			UnitPrice:    s.UnitPrice,
			TotalPrice:   s.TotalPrice,
			CustomerName: s.CustomerName,
			CreatedAt:    s.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if s.CustomerAddress != nil {
			d.CustomerAddress = *s.CustomerAddress
		}
		if s.CustomerPhone != nil {
			d.CustomerPhone = *s.CustomerPhone
		}
		out = append(out, d)
	}
	return out
}
