package dto

import "github.com/shopspring/decimal"

// AddInventoryRequest body para POST /api/inventory/lots.
type AddInventoryRequest struct {
	ItemID       string          `json:"item_id" validate:"required,uuid4"`
	Quantity     int             `json:"quantity" validate:"required,gte=1"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// AssignStockRequest body para POST /api/inventory/assignments.
type AssignStockRequest struct {
	ItemID      string `json:"item_id" validate:"required,uuid4"`
	AdminUserID string `json:"admin_user_id" validate:"required,uuid4"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
}

// AdjustQuantityRequest body para POST /api/inventory/adjustments.
// Adjustment es con signo; Reason es obligatorio (texto libre).
type AdjustQuantityRequest struct {
	ItemID     string `json:"item_id" validate:"required,uuid4"`
	Adjustment int    `json:"adjustment" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}

// UpdateInventoryRequest body para PUT /api/inventory/items/:id/pricing.
type UpdateInventoryRequest struct {
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// ItemStockDTO disponible global de un item para las vistas de inventario.
type ItemStockDTO struct {
	ItemID          string `json:"item_id"`
	ItemName        string `json:"item_name"`
	SKU             string `json:"sku"`
	TotalPurchased  int    `json:"total_purchased"`
	TotalAssigned   int    `json:"total_assigned"`
	GlobalAvailable int    `json:"global_available"`
}

// AdminStockDTO disponible de un admin sobre un item.
type AdminStockDTO struct {
	AdminUserID    string `json:"admin_user_id"`
	AdminName      string `json:"admin_name,omitempty"`
	ItemID         string `json:"item_id"`
	ItemName       string `json:"item_name,omitempty"`
	SKU            string `json:"sku,omitempty"`
	QtyAssigned    int    `json:"qty_assigned"`
	QtySold        int    `json:"qty_sold"`
	AdminAvailable int    `json:"admin_available"`
}

// AdminUserDTO admin activo para los formularios de asignación.
type AdminUserDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CategoryID string `json:"category_id,omitempty"`
}
