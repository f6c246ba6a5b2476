package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// Ensure TxRunner implements stock.TxRunner and sales.CreditTxRunner.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ sales.CreditTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. Adquiere
// una conexión dedicada del pool, hace BEGIN, ejecuta fn con repos atados a
// la tx y hace Commit o Rollback; la conexión se libera en todo camino de
// salida (el Rollback diferido es un no-op si ya hubo Commit).
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con los repos del libro de stock.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	lotRepo repository.LotRepository,
	asgRepo repository.AssignmentRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	lotRepo := NewLotRepository(tx)
	asgRepo := NewAssignmentRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(itemRepo, lotRepo, asgRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCredit inicia una transacción con los repos de venta a crédito
// (crédito + ventas, para la fila Sale espejo).
func (r *TxRunner) RunCredit(ctx context.Context, fn func(
	creditRepo repository.CreditRepository,
	saleRepo repository.SaleRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	creditRepo := NewCreditRepository(tx)
	saleRepo := NewSaleRepository(tx)

	if err := fn(creditRepo, saleRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
