package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta de contado registrada por un admin. UnitPrice se relee
// del Item en el servidor al momento de la venta; TotalPrice = qty × precio.
// CustomerAddress y CustomerPhone son opcionales (nil si no se capturaron).
//
// Invariante (verificado al crear): acumulado vendido por un admin para un
// item ≤ acumulado asignado a ese admin para ese item.
type Sale struct {
	ID              string
	ItemID          string
	AdminUserID     string
	QtySold         int
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
	CustomerName    string
	CustomerAddress *string
	CustomerPhone   *string
	CreatedAt       time.Time
}
