package stock

import (
	"context"

	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de DB, pasando
// repositorios atados a esa tx. Garantiza Commit/Rollback y la liberación de
// la conexión en todo camino de salida.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.ItemRepository,
		lotRepo repository.LotRepository,
		asgRepo repository.AssignmentRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
