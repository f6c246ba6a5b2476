package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/ledger"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
	"github.com/jhoicas/ventas-pro/pkg/validate"
)

// RecordCreditSale registra una venta a crédito (siempre 1 unidad).
//
// Guardia: el admin debe tener disponible > 0 para el item. Como el crédito
// siempre vende 1 unidad, verificar presencia de stock equivale a verificar
// 1 ≤ disponible.
//
// Dentro de una sola transacción: se asegura el esquema de crédito
// (CREATE TABLE IF NOT EXISTS, idempotente), se inserta la cabecera, el
// cronograma completo de cuotas y la fila Sale espejo (qty=1,
// unit_price=total_price, total_price=total_price, dirección NULL) que
// mantiene cuadrada la aritmética de stock. Cualquier fallo revierte todo.
//
// PendingBalance y MonthlyEMI vienen precalculados del cliente y se aceptan
// tal cual (frontera de confianza heredada, ver DESIGN.md).
func (uc *UseCase) RecordCreditSale(ctx context.Context, adminUserID string, in dto.RecordCreditSaleRequest) error {
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
	if ledger.AdminAvailable(assignments, salesRows, adminUserID) <= 0 {
		return domain.ErrNoAvailableStock
	}

	now := time.Now()

	var dueDate *time.Time
	if in.PaymentType == entity.PaymentTypePayLater {
		resolved, err := ResolvePayLaterDate(in.PayLaterDate, now)
		if err != nil {
			return err
		}
		dueDate = &resolved
	}

	credit := &entity.CreditSale{
		ID:             uuid.New().String(),
		ItemID:         in.ItemID,
		AdminUserID:    adminUserID,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		CustomerPhone:  in.CustomerPhone,
		TotalPrice:     in.TotalPrice,
		DownPayment:    in.DownPayment,
		PaymentType:    in.PaymentType,
		EMIPeriods:     in.EMIPeriods,
		MonthlyEMI:     in.MonthlyEMI,
		DueDate:        dueDate,
		PendingBalance: in.PendingBalance,
		Status:         entity.CreditStatusActive,
		CreatedAt:      now,
	}

	var scheduleDue time.Time
	if dueDate != nil {
		scheduleDue = *dueDate
	}
	schedule := BuildSchedule(credit.ID, in.PaymentType, in.EMIPeriods,
		in.MonthlyEMI, in.PendingBalance, scheduleDue, now)

	// Fila espejo en el libro de ventas: 1 unidad, el total como precio
	// unitario y total, sin dirección.
	mirror := &entity.Sale{
		ID:           uuid.New().String(),
		ItemID:       in.ItemID,
		AdminUserID:  adminUserID,
		QtySold:      1,
		UnitPrice:    in.TotalPrice,
		TotalPrice:   in.TotalPrice,
		CustomerName: in.CustomerName,
		CreatedAt:    now,
	}
	if in.CustomerPhone != "" {
		phone := in.CustomerPhone
		mirror.CustomerPhone = &phone
	}

	err = uc.creditTx.RunCredit(ctx, func(
		creditRepo repository.CreditRepository,
		saleRepo repository.SaleRepository,
	) error {
		if err := creditRepo.EnsureSchema(); err != nil {
			return err
		}
		if err := creditRepo.CreateSale(credit); err != nil {
			return err
		}
		for i := range schedule {
			if err := creditRepo.CreatePayment(&schedule[i]); err != nil {
				return err
			}
		}
		return saleRepo.Create(mirror)
	})
	if err != nil {
		return err
	}

	label := "Credit Sale (EMI)"
	if in.PaymentType == entity.PaymentTypePayLater {
		label = "Credit Sale (Pay Later)"
	}
	uc.recorder.Record(adminUserID, entity.AuditActionCreate, label, credit.ID,
		"total="+in.TotalPrice.String())
	return nil
}

// MarkCreditSaleCompleted pone el crédito en completed con saldo cero y
// registra la entrada UPDATE en bitácora. Las filas de credit_payments no se
// tocan: el cronograma queda desactualizado a propósito (comportamiento
// heredado, ver DESIGN.md).
func (uc *UseCase) MarkCreditSaleCompleted(ctx context.Context, actingUserID, creditSaleID string) error {
	if creditSaleID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.creditRepo.MarkCompleted(creditSaleID); err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionUpdate, "CreditSale", creditSaleID, "status=completed")
	return nil
}

// CreditSaleWithSchedule devuelve un crédito con su cronograma, como DTO.
func (uc *UseCase) CreditSaleWithSchedule(ctx context.Context, creditSaleID string) (*dto.CreditSaleDTO, error) {
	credit, err := uc.creditRepo.GetSaleByID(creditSaleID)
	if err != nil {
		return nil, err
	}
	if credit == nil {
		return nil, domain.ErrNotFound
	}
	payments, err := uc.creditRepo.ListPaymentsBySale(creditSaleID)
	if err != nil {
		return nil, err
	}
	out := creditToDTO(*credit)
	for _, p := range payments {
		out.Payments = append(out.Payments, dto.CreditPaymentDTO{
			InstallmentNo: p.InstallmentNo,
			AmountDue:     p.AmountDue,
			DueDate:       p.DueDate.Format("2006-01-02"),
		})
	}
	return &out, nil
}

// ListCreditSales lista todos los créditos (sin cronograma).
func (uc *UseCase) ListCreditSales(ctx context.Context) ([]dto.CreditSaleDTO, error) {
	credits, err := uc.creditRepo.ListSales()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreditSaleDTO, 0, len(credits))
	for _, c := range credits {
		out = append(out, creditToDTO(c))
	}
	return out, nil
}

// ListCreditSalesByAdmin lista los créditos registrados por un admin.
func (uc *UseCase) ListCreditSalesByAdmin(ctx context.Context, adminUserID string) ([]dto.CreditSaleDTO, error) {
	credits, err := uc.creditRepo.ListSalesByAdmin(adminUserID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CreditSaleDTO, 0, len(credits))
	for _, c := range credits {
		out = append(out, creditToDTO(c))
	}
	return out, nil
}

func creditToDTO(c entity.CreditSale) dto.CreditSaleDTO {
	d := dto.CreditSaleDTO{
		ID:             c.ID,
		ItemID:         c.ItemID,
		AdminUserID:    c.AdminUserID,
		CustomerName:   c.CustomerName,
		CustomerEmail:  c.CustomerEmail,
		CustomerPhone:  c.CustomerPhone,
		TotalPrice:     c.TotalPrice,
		DownPayment:    c.DownPayment,
		PaymentType:    c.PaymentType,
		EMIPeriods:     c.EMIPeriods,
		MonthlyEMI:     c.MonthlyEMI,
		PendingBalance: c.PendingBalance,
		Status:         c.Status,
	}
	if c.DueDate != nil {
		d.DueDate = c.DueDate.Format("2006-01-02")
	}
	return d
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
