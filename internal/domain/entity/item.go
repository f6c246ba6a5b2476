package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo (pertenece a una Category).
// DefaultSellingPrice es el precio que se relee en el servidor al momento
// de vender; nunca se confía en el precio que traiga el cliente.
type Item struct {
	ID                  string
	CategoryID          string
	Name                string
	SKU                 string // único; generado si el usuario no lo provee
	DefaultSellingPrice decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
