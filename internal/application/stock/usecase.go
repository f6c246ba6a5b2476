// Package stock implementa las operaciones transaccionales del libro de
// stock: alta de lotes, asignación a admins, ajustes, reprecio y baja.
//
// Todas las cantidades disponibles se recalculan en el momento plegando las
// filas completas (paquete domain/ledger); no existe saldo materializado.
package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-pro/internal/application/audit"
	"github.com/jhoicas/ventas-pro/internal/application/dto"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/ledger"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
	"github.com/jhoicas/ventas-pro/pkg/validate"
)

// UseCase agrupa las operaciones de inventario. Los repos inyectados están
// atados al pool (lecturas y operaciones de un solo insert); las operaciones
// multi-statement corren dentro de txRunner.
type UseCase struct {
	txRunner TxRunner
	itemRepo repository.ItemRepository
	lotRepo  repository.LotRepository
	asgRepo  repository.AssignmentRepository
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
	recorder *audit.Recorder
}

// NewUseCase construye el caso de uso de stock.
func NewUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	lotRepo repository.LotRepository,
	asgRepo repository.AssignmentRepository,
	saleRepo repository.SaleRepository,
	userRepo repository.UserRepository,
	recorder *audit.Recorder,
) *UseCase {
	return &UseCase{
		txRunner: txRunner,
		itemRepo: itemRepo,
		lotRepo:  lotRepo,
		asgRepo:  asgRepo,
		saleRepo: saleRepo,
		userRepo: userRepo,
		recorder: recorder,
	}
}

// AddInventoryLot inserta un lote de compra para un item. Agregar oferta
// siempre procede: no hay guardia de stock. Corre en una transacción propia.
func (uc *UseCase) AddInventoryLot(ctx context.Context, actingUserID string, in dto.AddInventoryRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return domain.ErrInvalidInput
	}

	lot := &entity.InventoryLot{
		ID:           uuid.New().String(),
		ItemID:       in.ItemID,
		QtyPurchased: in.Quantity,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		CreatedAt:    time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		lotRepo repository.LotRepository,
		_ repository.AssignmentRepository,
		_ repository.SaleRepository,
	) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		return lotRepo.Create(lot)
	})
	if err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionCreate, "InventoryLot", lot.ID,
		fmt.Sprintf("qty=%d", in.Quantity))
	return nil
}

// AssignStock transfiere cantidad del pool global al cupo de un admin.
//
// Guardia: quantity ≤ disponible global, recalculado aquí. Además debe
// existir al menos un lote del item para resolver source_lot_id; si no hay
// lote la operación falla aunque el disponible aritmético sea positivo
// (caso heredado del sistema original, ver DESIGN.md).
//
// Es un único insert, sin transacción multi-statement: la secuencia
// leer-agregados → comparar → insertar no está protegida contra un assign
// concurrente sobre el mismo item (limitación conocida, reproducida).
func (uc *UseCase) AssignStock(ctx context.Context, actingUserID string, in dto.AssignStockRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}

	admin, err := uc.userRepo.GetByID(in.AdminUserID)
	if err != nil {
		return err
	}
	if admin == nil || admin.Role != entity.RoleAdmin {
		return domain.ErrNotFound
	}

	lots, err := uc.lotRepo.ListByItem(in.ItemID)
	if err != nil {
		return err
	}
	assignments, err := uc.asgRepo.ListByItem(in.ItemID)
	if err != nil {
		return err
	}
	if in.Quantity > ledger.GlobalAvailable(lots, assignments) {
		return domain.ErrNotEnoughGlobalStock
	}

	sourceLot, err := uc.lotRepo.FirstByItem(in.ItemID)
	if err != nil {
		return err
	}
	if sourceLot == nil {
		return domain.ErrNoSourceLot
	}

	asg := &entity.Assignment{
		ID:          uuid.New().String(),
		ItemID:      in.ItemID,
		AdminUserID: in.AdminUserID,
		QtyAssigned: in.Quantity,
		SourceLotID: sourceLot.ID,
		CreatedAt:   time.Now(),
	}
	if err := uc.asgRepo.Create(asg); err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionAssign, "Assignment", asg.ID,
		fmt.Sprintf("qty=%d admin=%s", in.Quantity, in.AdminUserID))
	return nil
}

// AdjustInventoryQuantity registra una corrección de cantidad como lote
// compensatorio nuevo (precios en cero, cantidad con signo); la historia no
// se muta. No hay guardia que impida dejar el agregado en negativo.
func (uc *UseCase) AdjustInventoryQuantity(ctx context.Context, actingUserID string, in dto.AdjustQuantityRequest) error {
	if err := validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}

	lot := &entity.InventoryLot{
		ID:           uuid.New().String(),
		ItemID:       in.ItemID,
		QtyPurchased: in.Adjustment,
		CreatedAt:    time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		lotRepo repository.LotRepository,
		_ repository.AssignmentRepository,
		_ repository.SaleRepository,
	) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		return lotRepo.Create(lot)
	})
	if err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionAdjust, "InventoryLot", lot.ID,
		fmt.Sprintf("adjustment=%d reason=%s", in.Adjustment, in.Reason))
	return nil
}

// UpdateInventory reprecia TODOS los lotes del item (no solo el último) y
// actualiza el precio de venta por defecto del item, en una transacción.
func (uc *UseCase) UpdateInventory(ctx context.Context, actingUserID, itemID string, in dto.UpdateInventoryRequest) error {
	if itemID == "" || in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		lotRepo repository.LotRepository,
		_ repository.AssignmentRepository,
		_ repository.SaleRepository,
	) error {
		item, err := itemRepo.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := lotRepo.UpdatePricesByItem(itemID, in.CostPrice, in.SellingPrice); err != nil {
			return err
		}
		return itemRepo.UpdateDefaultSellingPrice(itemID, in.SellingPrice)
	})
	if err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionUpdate, "InventoryLot", itemID,
		fmt.Sprintf("cost=%s selling=%s", in.CostPrice, in.SellingPrice))
	return nil
}

// DeleteInventoryItem borra todos los lotes del item. La fila del item y la
// historia de ventas quedan intactas.
//
// Guardia: el item no puede tener asignaciones.
func (uc *UseCase) DeleteInventoryItem(ctx context.Context, actingUserID, itemID string) error {
	if itemID == "" {
		return domain.ErrInvalidInput
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.ItemRepository,
		lotRepo repository.LotRepository,
		asgRepo repository.AssignmentRepository,
		_ repository.SaleRepository,
	) error {
		hasAssignments, err := asgRepo.ExistsByItem(itemID)
		if err != nil {
			return err
		}
		if hasAssignments {
			return domain.ErrItemHasAssignments
		}
		return lotRepo.DeleteByItem(itemID)
	})
	if err != nil {
		return err
	}
	uc.recorder.Record(actingUserID, entity.AuditActionDelete, "InventoryLot", itemID, "all lots removed")
	return nil
}

// ItemStock devuelve el resumen global de stock de un item, recalculado
// plegando lotes y asignaciones en memoria.
func (uc *UseCase) ItemStock(ctx context.Context, itemID string) (*dto.ItemStockDTO, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	lots, err := uc.lotRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	assignments, err := uc.asgRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	purchased := ledger.TotalPurchased(lots)
	assigned := ledger.TotalAssigned(assignments)
	return &dto.ItemStockDTO{
		ItemID:          item.ID,
		ItemName:        item.Name,
		SKU:             item.SKU,
		TotalPurchased:  purchased,
		TotalAssigned:   assigned,
		GlobalAvailable: purchased - assigned,
	}, nil
}

// AdminStock devuelve el disponible de un admin sobre un item.
func (uc *UseCase) AdminStock(ctx context.Context, adminUserID, itemID string) (*dto.AdminStockDTO, error) {
	assignments, err := uc.asgRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	assigned := ledger.AdminAssigned(assignments, adminUserID)
	sold := ledger.AdminSold(sales, adminUserID)
	return &dto.AdminStockDTO{
		AdminUserID:    adminUserID,
		ItemID:         itemID,
		QtyAssigned:    assigned,
		QtySold:        sold,
		AdminAvailable: assigned - sold,
	}, nil
}

// Admins lista los admins activos (para los formularios de asignación).
func (uc *UseCase) Admins(ctx context.Context) ([]dto.AdminUserDTO, error) {
	admins, err := uc.userRepo.ListAdmins()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AdminUserDTO, 0, len(admins))
	for _, a := range admins {
		out = append(out, dto.AdminUserDTO{
			ID:         a.ID,
			Name:       a.Name,
			Email:      a.Email,
			CategoryID: a.CategoryID,
		})
	}
	return out, nil
}
