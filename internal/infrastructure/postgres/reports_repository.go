package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.ReportsRepository = (*ReportsRepo)(nil)

// ReportsRepo consultas de solo lectura para los view-models del dashboard.
type ReportsRepo struct {
	pool *pgxpool.Pool
}

// NewReportsRepository construye el adaptador de reportes.
func NewReportsRepository(pool *pgxpool.Pool) *ReportsRepo {
	return &ReportsRepo{pool: pool}
}

// GetCategoryRevenue agrupa unidades e ingresos por categoría
// (join sales → items → categories). Ingresos = Σ total_price.
func (r *ReportsRepo) GetCategoryRevenue(ctx context.Context) ([]repository.CategoryRevenueRow, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    COALESCE(SUM(s.qty_sold), 0)    AS units_sold,
	    COALESCE(SUM(s.total_price), 0) AS revenue
	FROM categories c
	JOIN items i  ON i.category_id = c.id
	JOIN sales s  ON s.item_id     = i.id
	GROUP BY c.id, c.name
	ORDER BY revenue DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("category revenue: %w", err)
	}
	defer rows.Close()
	var list []repository.CategoryRevenueRow
	for rows.Next() {
		var row repository.CategoryRevenueRow
		if err := rows.Scan(&row.CategoryID, &row.CategoryName, &row.UnitsSold, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan category revenue: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetAdminStock devuelve asignado y vendido por (admin, item). El disponible
// se deriva en memoria en el use case; aquí no se materializa ningún saldo.
func (r *ReportsRepo) GetAdminStock(ctx context.Context) ([]repository.AdminItemRow, error) {
	const query = `
	SELECT
	    u.id,
	    u.name,
	    i.id,
	    i.name,
	    i.sku,
	    COALESCE(asg.qty, 0)  AS qty_assigned,
	    COALESCE(sold.qty, 0) AS qty_sold
	FROM users u
	JOIN assignments a ON a.admin_user_id = u.id
	JOIN items i       ON i.id = a.item_id
	LEFT JOIN LATERAL (
	    SELECT SUM(qty_assigned) AS qty FROM assignments
	    WHERE admin_user_id = u.id AND item_id = i.id
	) asg ON true
	LEFT JOIN LATERAL (
	    SELECT SUM(qty_sold) AS qty FROM sales
	    WHERE admin_user_id = u.id AND item_id = i.id
	) sold ON true
	GROUP BY u.id, u.name, i.id, i.name, i.sku, asg.qty, sold.qty
	ORDER BY u.name, i.name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("admin stock: %w", err)
	}
	defer rows.Close()
	var list []repository.AdminItemRow
	for rows.Next() {
		var row repository.AdminItemRow
		if err := rows.Scan(&row.AdminUserID, &row.AdminName, &row.ItemID, &row.ItemName,
			&row.SKU, &row.QtyAssigned, &row.QtySold); err != nil {
			return nil, fmt.Errorf("scan admin stock: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
