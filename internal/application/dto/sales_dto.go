package dto

import "github.com/shopspring/decimal"

// RecordSaleRequest body para POST /api/sales.
// El precio unitario NO viene del cliente: se relee del item en el servidor.
type RecordSaleRequest struct {
	ItemID          string `json:"item_id" validate:"required,uuid4"`
	Quantity        int    `json:"quantity" validate:"required,gte=1"`
	CustomerName    string `json:"customer_name" validate:"required"`
	CustomerAddress string `json:"customer_address"`
	CustomerPhone   string `json:"customer_phone" validate:"telefono"`
}

// RecordCreditSaleRequest body para POST /api/credit-sales.
//
// PendingBalance y MonthlyEMI los precalcula el cliente
// (totalPrice − downPayment y pendingBalance / emiPeriods) y el servidor los
// acepta tal cual, sin recomputarlos: frontera de confianza heredada del
// sistema original, reproducida a propósito.
type RecordCreditSaleRequest struct {
	ItemID         string          `json:"item_id" validate:"required,uuid4"`
	CustomerName   string          `json:"customer_name" validate:"required"`
	CustomerEmail  string          `json:"customer_email" validate:"required,email"`
	CustomerPhone  string          `json:"customer_phone" validate:"required,telefono"`
	TotalPrice     decimal.Decimal `json:"total_price" validate:"required"`
	DownPayment    decimal.Decimal `json:"down_payment"`
	PaymentType    string          `json:"payment_type" validate:"required,oneof=emi pay_later"`
	EMIPeriods     int             `json:"emi_periods" validate:"required_if=PaymentType emi,omitempty,gte=1"`
	PayLaterDate   string          `json:"pay_later_date" validate:"required_if=PaymentType pay_later"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
	MonthlyEMI     decimal.Decimal `json:"monthly_emi"`
}

// SaleDTO venta de contado para listados.
type SaleDTO struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	AdminUserID     string          `json:"admin_user_id"`
	QtySold         int             `json:"qty_sold"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	CustomerName    string          `json:"customer_name"`
	CustomerAddress string          `json:"customer_address,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// CreditSaleDTO venta a crédito para listados (incluye cronograma opcional).
type CreditSaleDTO struct {
	ID             string             `json:"id"`
	ItemID         string             `json:"item_id"`
	AdminUserID    string             `json:"admin_user_id"`
	CustomerName   string             `json:"customer_name"`
	CustomerEmail  string             `json:"customer_email"`
	CustomerPhone  string             `json:"customer_phone"`
	TotalPrice     decimal.Decimal    `json:"total_price"`
	DownPayment    decimal.Decimal    `json:"down_payment"`
	PaymentType    string             `json:"payment_type"`
	EMIPeriods     int                `json:"emi_periods,omitempty"`
	MonthlyEMI     decimal.Decimal    `json:"monthly_emi"`
	DueDate        string             `json:"due_date,omitempty"`
	PendingBalance decimal.Decimal    `json:"pending_balance"`
	Status         string             `json:"status"`
	Payments       []CreditPaymentDTO `json:"payments,omitempty"`
}

// CreditPaymentDTO cuota del cronograma.
type CreditPaymentDTO struct {
	InstallmentNo int             `json:"installment_no"`
	AmountDue     decimal.Decimal `json:"amount_due"`
	DueDate       string          `json:"due_date"`
}
