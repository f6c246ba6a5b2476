package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de plan de pago de una venta a crédito.
const (
	PaymentTypeEMI      = "emi"       // N cuotas mensuales iguales
	PaymentTypePayLater = "pay_later" // un solo pago diferido
)

// Estados de una venta a crédito.
const (
	CreditStatusActive    = "active"
	CreditStatusCompleted = "completed"
	CreditStatusDefaulted = "defaulted"
)

// CreditSale es una venta con pago diferido. Siempre representa exactamente
// 1 unidad vendida; junto con la fila de crédito se inserta una Sale espejo
// (qty=1, unit_price=total_price, total_price=total_price, dirección NULL)
// para que la aritmética de stock disponible siga cuadrando. Esa
// desnormalización es deliberada y se reproduce tal cual.
type CreditSale struct {
	ID             string
	ItemID         string
	AdminUserID    string
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	TotalPrice     decimal.Decimal
	DownPayment    decimal.Decimal
	PaymentType    string // emi, pay_later
	EMIPeriods     int    // solo si emi
	MonthlyEMI     decimal.Decimal
	DueDate        *time.Time // solo si pay_later (fecha resuelta)
	PendingBalance decimal.Decimal
	Status         string // active, completed, defaulted
	CreatedAt      time.Time
}

// CreditPayment es una cuota programada de una CreditSale. Las cuotas se
// generan de forma anticipada al crear el crédito (N filas para EMI, 1 para
// pay_later) y ninguna operación del núcleo las actualiza después:
// markCreditSaleCompleted solo toca la fila del crédito y deja el cronograma
// tal como quedó (limitación conocida del sistema, reproducida a propósito).
type CreditPayment struct {
	ID            string
	CreditSaleID  string
	InstallmentNo int
	AmountDue     decimal.Decimal
	DueDate       time.Time
	CreatedAt     time.Time
}
