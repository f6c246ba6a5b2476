package sales

import (
	"context"

	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// CreditTxRunner ejecuta una función dentro de una transacción de DB con los
// repositorios de crédito y ventas atados a esa tx. La venta a crédito es
// atómica: cabecera, cronograma y fila Sale espejo entran o se revierten
// juntas.
type CreditTxRunner interface {
	RunCredit(ctx context.Context, fn func(
		creditRepo repository.CreditRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// StatementPDFGenerator genera el estado de cuenta en PDF de una venta a
// crédito (puerto hacia infrastructure/pdf).
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, data *StatementData) ([]byte, error)
}
