package repository

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// ListByItem devuelve todas las ventas del item (incluidas las filas
	// espejo de ventas a crédito); el libro de stock las pliega en memoria.
	ListByItem(itemID string) ([]entity.Sale, error)
	ListByAdmin(adminUserID string) ([]entity.Sale, error)
	List() ([]entity.Sale, error)
}
