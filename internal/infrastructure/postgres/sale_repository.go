package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta (de contado o la fila espejo de un crédito).
func (r *SaleRepo) Create(sale *entity.Sale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO sales (id, item_id, admin_user_id, qty_sold, unit_price, total_price,
			customer_name, customer_address, customer_phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ItemID, sale.AdminUserID, sale.QtySold, sale.UnitPrice, sale.TotalPrice,
		sale.CustomerName, sale.CustomerAddress, sale.CustomerPhone, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByItem devuelve todas las ventas del item.
func (r *SaleRepo) ListByItem(itemID string) ([]entity.Sale, error) {
	return r.list(`WHERE item_id = $1`, itemID)
}

// ListByAdmin devuelve todas las ventas registradas por un admin.
func (r *SaleRepo) ListByAdmin(adminUserID string) ([]entity.Sale, error) {
	return r.list(`WHERE admin_user_id = $1`, adminUserID)
}

// List devuelve todas las ventas.
func (r *SaleRepo) List() ([]entity.Sale, error) {
	return r.list(``)
}

func (r *SaleRepo) list(where string, args ...any) ([]entity.Sale, error) {
	query := `
		SELECT id, item_id, admin_user_id, qty_sold, unit_price, total_price,
			customer_name, customer_address, customer_phone, created_at
		FROM sales ` + where
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ItemID, &s.AdminUserID, &s.QtySold, &s.UnitPrice,
			&s.TotalPrice, &s.CustomerName, &s.CustomerAddress, &s.CustomerPhone, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
