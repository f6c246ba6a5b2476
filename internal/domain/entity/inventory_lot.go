package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLot es un lote de compra de un Item: cantidad, costo y precio
// de venta al momento de la compra. Los lotes nunca se mutan después de
// creados; las correcciones de cantidad se modelan como lotes compensatorios
// nuevos con precios en cero y QtyPurchased positivo o negativo.
//
// Invariante: total comprado de un item = Σ QtyPurchased de todos sus lotes.
type InventoryLot struct {
	ID           string
	ItemID       string
	QtyPurchased int // con signo: los ajustes pueden ser negativos
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	CreatedAt    time.Time
}

// IsAdjustment indica si el lote es una corrección (lote compensatorio):
// ambos precios en cero. Un lote real de compra siempre registra precios.
func (l InventoryLot) IsAdjustment() bool {
	return l.CostPrice.IsZero() && l.SellingPrice.IsZero()
}
