package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// CategoryRevenueRow resultado crudo de la consulta de ingresos por categoría.
// Lo produce la DB; el use case lo pliega y convierte en DTO.
type CategoryRevenueRow struct {
	CategoryID   string
	CategoryName string
	UnitsSold    int
	Revenue      decimal.Decimal
}

// AdminItemRow fila cruda (admin × item) para la vista de stock por admin.
type AdminItemRow struct {
	AdminUserID string
	AdminName   string
	ItemID      string
	ItemName    string
	SKU         string
	QtyAssigned int
	QtySold     int
}

// ReportsRepository define las consultas de lectura para los view-models del
// dashboard. Las implementaciones son read-only (no modifican datos).
type ReportsRepository interface {
	// GetCategoryRevenue agrupa unidades e ingresos de ventas por categoría
	// (join sales → items → categories).
	GetCategoryRevenue(ctx context.Context) ([]CategoryRevenueRow, error)

	// GetAdminStock devuelve asignado y vendido por (admin, item); el use
	// case deriva el disponible en memoria.
	GetAdminStock(ctx context.Context) ([]AdminItemRow, error)
}
