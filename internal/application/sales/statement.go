package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// StatementData reúne todo lo que el generador necesita para armar el estado
// de cuenta de un crédito: la venta, el nombre del producto y el cronograma.
type StatementData struct {
	Credit   *entity.CreditSale
	ItemName string
	Schedule []entity.CreditPayment
}

// StatementUseCase genera el estado de cuenta (PDF) de una venta a crédito.
type StatementUseCase struct {
	creditRepo repository.CreditRepository
	itemRepo   repository.ItemRepository
	generator  StatementPDFGenerator
}

// NewStatementUseCase construye el caso de uso inyectando sus dependencias.
func NewStatementUseCase(
	creditRepo repository.CreditRepository,
	itemRepo repository.ItemRepository,
	generator StatementPDFGenerator,
) *StatementUseCase {
	return &StatementUseCase{
		creditRepo: creditRepo,
		itemRepo:   itemRepo,
		generator:  generator,
	}
}

// DownloadStatementPDF carga el crédito con su cronograma y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil) si todo sale bien.
//   - domain.ErrNotFound        si el crédito no existe.
//   - domain.ErrForbidden       si el crédito no pertenece al admin del token
//     (el superadmin puede descargar cualquiera).
func (uc *StatementUseCase) DownloadStatementPDF(
	ctx context.Context,
	actingUserID, actingRole, creditSaleID string,
) (pdfBytes []byte, filename string, err error) {
	credit, err := uc.creditRepo.GetSaleByID(creditSaleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener crédito: %w", err)
	}
	if credit == nil {
		return nil, "", domain.ErrNotFound
	}
	if actingRole != entity.RoleSuperadmin && credit.AdminUserID != actingUserID {
		return nil, "", domain.ErrForbidden
	}

	itemName := "Producto " + credit.ItemID // fallback
	if item, iErr := uc.itemRepo.GetByID(credit.ItemID); iErr == nil && item != nil {
		itemName = item.Name
	}

	schedule, err := uc.creditRepo.ListPaymentsBySale(creditSaleID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cronograma: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateStatementPDF(ctx, &StatementData{
		Credit:   credit,
		ItemName: itemName,
		Schedule: schedule,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("estado_cuenta_%s.pdf", credit.ID)
	return pdfBytes, filename, nil
}
