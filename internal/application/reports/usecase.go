// Package reports arma los view-models de solo lectura del dashboard:
// ingresos por categoría, stock por admin, resumen de crédito y bitácora.
package reports

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// Límite por defecto de entradas de bitácora en la vista de auditoría.
const defaultAuditLimit = 100

// UseCase agrupa las lecturas del dashboard. Ninguna operación de este
// paquete modifica datos.
type UseCase struct {
	reportsRepo repository.ReportsRepository
	creditRepo  repository.CreditRepository
	auditRepo   repository.AuditLogRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(
	reportsRepo repository.ReportsRepository,
	creditRepo repository.CreditRepository,
	auditRepo repository.AuditLogRepository,
) *UseCase {
	return &UseCase{
		reportsRepo: reportsRepo,
		creditRepo:  creditRepo,
		auditRepo:   auditRepo,
	}
}

// CategoryRevenue devuelve unidades vendidas e ingresos agrupados por
// categoría (la agregación corre en la DB).
func (uc *UseCase) CategoryRevenue(ctx context.Context) ([]dto.CategoryRevenueDTO, error) {
	rows, err := uc.reportsRepo.GetCategoryRevenue(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryRevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryRevenueDTO{
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			UnitsSold:    r.UnitsSold,
			Revenue:      r.Revenue,
		})
	}
	return out, nil
}

// AdminStock devuelve asignado, vendido y disponible por (admin, item).
// El disponible se deriva en memoria: asignado − vendido.
func (uc *UseCase) AdminStock(ctx context.Context) ([]dto.AdminStockDTO, error) {
	rows, err := uc.reportsRepo.GetAdminStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminStockDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AdminStockDTO{
			AdminUserID:    r.AdminUserID,
			AdminName:      r.AdminName,
			ItemID:         r.ItemID,
			ItemName:       r.ItemName,
			SKU:            r.SKU,
			QtyAssigned:    r.QtyAssigned,
			QtySold:        r.QtySold,
			AdminAvailable: r.QtyAssigned - r.QtySold,
		})
	}
	return out, nil
}

// CreditSummary pliega el libro de crédito completo en un resumen: conteos
// por estado y montos financiado, pendiente y cobrado (financiado − inicial
// − pendiente).
func (uc *UseCase) CreditSummary(ctx context.Context) (*dto.CreditSummaryDTO, error) {
	credits, err := uc.creditRepo.ListSales()
	if err != nil {
		return nil, err
	}
	summary := &dto.CreditSummaryDTO{
		TotalFinanced:  decimal.Zero,
		TotalPending:   decimal.Zero,
		TotalCollected: decimal.Zero,
	}
	for _, c := range credits {
		switch c.Status {
		case entity.CreditStatusCompleted:
			summary.CompletedCount++
		case entity.CreditStatusDefaulted:
			summary.DefaultedCount++
		default:
			summary.ActiveCount++
		}
		financed := c.TotalPrice.Sub(c.DownPayment)
		summary.TotalFinanced = summary.TotalFinanced.Add(financed)
		summary.TotalPending = summary.TotalPending.Add(c.PendingBalance)
		summary.TotalCollected = summary.TotalCollected.Add(financed.Sub(c.PendingBalance))
	}
	return summary, nil
}

// OverdueInstallments lista las cuotas vencidas de los créditos activos,
// ordenadas de la más atrasada a la más reciente. El cronograma nunca se
// marca como pagado, así que "vencida" aquí significa fecha cumplida con el
// crédito todavía activo.
func (uc *UseCase) OverdueInstallments(ctx context.Context) ([]dto.OverdueInstallmentDTO, error) {
	credits, err := uc.creditRepo.ListSales()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	out := make([]dto.OverdueInstallmentDTO, 0)
	for _, c := range credits {
		if c.Status != entity.CreditStatusActive {
			continue
		}
		payments, err := uc.creditRepo.ListPaymentsBySale(c.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range payments {
			if p.DueDate.After(now) {
				continue
			}
			out = append(out, dto.OverdueInstallmentDTO{
				CreditSaleID:  c.ID,
				CustomerName:  c.CustomerName,
				CustomerPhone: c.CustomerPhone,
				InstallmentNo: p.InstallmentNo,
				AmountDue:     p.AmountDue,
				DueDate:       p.DueDate.Format("2006-01-02"),
				DaysOverdue:   int(now.Sub(p.DueDate).Hours() / 24),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DaysOverdue > out[j].DaysOverdue })
	return out, nil
}

// AuditTrail devuelve las entradas más recientes de la bitácora con el
// nombre del usuario resuelto, en orden descendente por fecha.
func (uc *UseCase) AuditTrail(ctx context.Context, limit int) ([]dto.AuditEntryDTO, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	entries, err := uc.auditRepo.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AuditEntryDTO{
			ID:         e.ID,
			UserID:     e.UserID,
			UserName:   e.UserName,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Detail:     e.Detail,
			CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return out, nil
}
