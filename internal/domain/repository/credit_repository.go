package repository

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// CreditRepository define el puerto de persistencia para ventas a crédito
// y su cronograma de cuotas.
type CreditRepository interface {
	// EnsureSchema crea las tablas credit_sales y credit_payments si no
	// existen (CREATE TABLE IF NOT EXISTS, idempotente). recordCreditSale es
	// el punto de migración de facto de esta funcionalidad: las tablas no
	// están garantizadas antes del primer crédito.
	EnsureSchema() error
	CreateSale(sale *entity.CreditSale) error
	CreatePayment(payment *entity.CreditPayment) error
	GetSaleByID(id string) (*entity.CreditSale, error)
	ListSales() ([]entity.CreditSale, error)
	ListSalesByAdmin(adminUserID string) ([]entity.CreditSale, error)
	ListPaymentsBySale(creditSaleID string) ([]entity.CreditPayment, error)
	// MarkCompleted pone status='completed' y pending_balance=0. No toca las
	// filas de credit_payments: el cronograma queda tal cual.
	MarkCompleted(id string) error
}
