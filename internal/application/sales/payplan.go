package sales

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// Valores centinela aceptados en pay_later_date además de una fecha literal.
const (
	payLaterTomorrow = "tomorrow"
	payLaterOneMonth = "1_month"
)

// ResolvePayLaterDate convierte el campo pay_later_date en una fecha
// concreta: "tomorrow" = hoy + 1 día, "1_month" = hoy + 1 mes calendario, y
// un literal que parezca fecha ISO (empieza por "20") pasa tal cual.
func ResolvePayLaterDate(raw string, now time.Time) (time.Time, error) {
	switch raw {
	case payLaterTomorrow:
		return now.AddDate(0, 0, 1), nil
	case payLaterOneMonth:
		return now.AddDate(0, 1, 0), nil
	}
	if strings.HasPrefix(raw, "20") {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, domain.ErrInvalidInput
		}
		return d, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

// BuildSchedule genera el cronograma de cuotas de un crédito de forma
// anticipada: N filas mensuales para EMI (vencen a +1..+N meses de la
// creación, cada una por monthlyEMI) o una sola fila para pay_later (vence
// en dueDate, por el saldo pendiente completo).
func BuildSchedule(
	creditSaleID, paymentType string,
	emiPeriods int,
	monthlyEMI, pendingBalance decimal.Decimal,
	dueDate time.Time,
	now time.Time,
) []entity.CreditPayment {
	if paymentType == entity.PaymentTypePayLater {
		return []entity.CreditPayment{{
			ID:            uuid.New().String(),
			CreditSaleID:  creditSaleID,
			InstallmentNo: 1,
			AmountDue:     pendingBalance,
			DueDate:       dueDate,
			CreatedAt:     now,
		}}
	}
	schedule := make([]entity.CreditPayment, 0, emiPeriods)
	for i := 1; i <= emiPeriods; i++ {
		schedule = append(schedule, entity.CreditPayment{
			ID:            uuid.New().String(),
			CreditSaleID:  creditSaleID,
			InstallmentNo: i,
			AmountDue:     monthlyEMI,
			DueDate:       now.AddDate(0, i, 0),
			CreatedAt:     now,
		})
	}
	return schedule
}
