package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateDefaultSellingPrice actualiza solo el precio de venta por defecto
	// (lo usa updateInventory dentro de su transacción).
	UpdateDefaultSellingPrice(itemID string, price decimal.Decimal) error
	ListByCategory(categoryID string) ([]*entity.Item, error)
	List() ([]*entity.Item, error)
	Delete(id string) error
}
