package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación de LotRepository sobre PostgreSQL (usable con pool o tx).
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create persiste un lote (de compra o compensatorio).
func (r *LotRepo) Create(lot *entity.InventoryLot) error {
	if lot.ID == "" {
		lot.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_lots (id, item_id, qty_purchased, cost_price, selling_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ItemID, lot.QtyPurchased, lot.CostPrice, lot.SellingPrice, lot.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inventory lot: %w", err)
	}
	return nil
}

// ListByItem devuelve todos los lotes del item.
func (r *LotRepo) ListByItem(itemID string) ([]entity.InventoryLot, error) {
	query := `
		SELECT id, item_id, qty_purchased, cost_price, selling_price, created_at
		FROM inventory_lots WHERE item_id = $1`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []entity.InventoryLot
	for rows.Next() {
		var l entity.InventoryLot
		if err := rows.Scan(&l.ID, &l.ItemID, &l.QtyPurchased, &l.CostPrice, &l.SellingPrice, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// FirstByItem devuelve algún lote del item (LIMIT 1 sin ORDER BY: el primero
// que encuentre, no el más viejo) o nil si no hay lotes.
func (r *LotRepo) FirstByItem(itemID string) (*entity.InventoryLot, error) {
	query := `
		SELECT id, item_id, qty_purchased, cost_price, selling_price, created_at
		FROM inventory_lots WHERE item_id = $1 LIMIT 1`
	var l entity.InventoryLot
	err := r.q.QueryRow(context.Background(), query, itemID).Scan(
		&l.ID, &l.ItemID, &l.QtyPurchased, &l.CostPrice, &l.SellingPrice, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("first lot: %w", err)
	}
	return &l, nil
}

// UpdatePricesByItem reprecia todos los lotes del item.
func (r *LotRepo) UpdatePricesByItem(itemID string, costPrice, sellingPrice decimal.Decimal) error {
	query := `UPDATE inventory_lots SET cost_price = $2, selling_price = $3 WHERE item_id = $1`
	_, err := r.q.Exec(context.Background(), query, itemID, costPrice, sellingPrice)
	if err != nil {
		return fmt.Errorf("update lot prices: %w", err)
	}
	return nil
}

// DeleteByItem elimina todos los lotes del item.
func (r *LotRepo) DeleteByItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_lots WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete lots: %w", err)
	}
	return nil
}
