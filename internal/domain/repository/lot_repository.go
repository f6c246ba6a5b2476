package repository

import (
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para InventoryLot.
// No hay Update de filas individuales: los lotes son inmutables y las
// correcciones entran como lotes compensatorios nuevos. La única mutación
// permitida es el reprecio masivo de updateInventory.
type LotRepository interface {
	Create(lot *entity.InventoryLot) error
	// ListByItem devuelve todos los lotes del item (el libro de stock pliega
	// la lista completa en memoria; no hay agregados incrementales).
	ListByItem(itemID string) ([]entity.InventoryLot, error)
	// FirstByItem devuelve algún lote existente del item (el primero que
	// encuentre, no necesariamente el más viejo; FIFO no está implementado)
	// o nil si el item no tiene lotes.
	FirstByItem(itemID string) (*entity.InventoryLot, error)
	// UpdatePricesByItem reprecia TODOS los lotes del item (no solo el último).
	UpdatePricesByItem(itemID string, costPrice, sellingPrice decimal.Decimal) error
	// DeleteByItem elimina todos los lotes del item.
	DeleteByItem(itemID string) error
}
