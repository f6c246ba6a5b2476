package dto

import "github.com/shopspring/decimal"

// CategoryRevenueDTO ingresos por categoría para el dashboard.
type CategoryRevenueDTO struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	UnitsSold    int             `json:"units_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// CreditSummaryDTO resumen del libro de crédito para el dashboard.
type CreditSummaryDTO struct {
	ActiveCount     int             `json:"active_count"`
	CompletedCount  int             `json:"completed_count"`
	DefaultedCount  int             `json:"defaulted_count"`
	TotalFinanced   decimal.Decimal `json:"total_financed"`
	TotalPending    decimal.Decimal `json:"total_pending"`
	TotalCollected  decimal.Decimal `json:"total_collected"` // financiado − pendiente
}

// OverdueInstallmentDTO cuota vencida de un crédito activo.
type OverdueInstallmentDTO struct {
	CreditSaleID  string          `json:"credit_sale_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	InstallmentNo int             `json:"installment_no"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	DueDate       string          `json:"due_date"`
	DaysOverdue   int             `json:"days_overdue"`
}

// AuditEntryDTO entrada de bitácora para la vista de auditoría.
type AuditEntryDTO struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name"`
	Action     string `json:"action"`
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Detail     string `json:"detail,omitempty"`
	CreatedAt  string `json:"created_at"`
}
