package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.CreditRepository = (*CreditRepo)(nil)

// CreditRepo implementación de CreditRepository sobre PostgreSQL (usable con pool o tx).
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

// EnsureSchema crea credit_sales y credit_payments si no existen. Se invoca
// al inicio de recordCreditSale dentro de su transacción: la funcionalidad
// de crédito hace su propia migración en el primer uso.
func (r *CreditRepo) EnsureSchema() error {
	ddl := `
		CREATE TABLE IF NOT EXISTS credit_sales (
			id              UUID PRIMARY KEY,
			item_id         UUID NOT NULL,
			admin_user_id   UUID NOT NULL,
			customer_name   TEXT NOT NULL,
			customer_email  TEXT NOT NULL,
			customer_phone  TEXT NOT NULL,
			total_price     NUMERIC(12,2) NOT NULL,
			down_payment    NUMERIC(12,2) NOT NULL DEFAULT 0,
			payment_type    TEXT NOT NULL,
			emi_periods     INT NOT NULL DEFAULT 0,
			monthly_emi     NUMERIC(12,2) NOT NULL DEFAULT 0,
			due_date        DATE,
			pending_balance NUMERIC(12,2) NOT NULL DEFAULT 0,
			status          TEXT NOT NULL DEFAULT 'active',
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS credit_payments (
			id             UUID PRIMARY KEY,
			credit_sale_id UUID NOT NULL REFERENCES credit_sales(id),
			installment_no INT NOT NULL,
			amount_due     NUMERIC(12,2) NOT NULL,
			due_date       DATE NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		);`
	if _, err := r.q.Exec(context.Background(), ddl); err != nil {
		return fmt.Errorf("ensure credit schema: %w", err)
	}
	return nil
}

// CreateSale persiste la cabecera de una venta a crédito.
func (r *CreditRepo) CreateSale(sale *entity.CreditSale) error {
	if sale.ID == "" {
		sale.ID = uuid.New().String()
	}
	query := `
		INSERT INTO credit_sales (id, item_id, admin_user_id, customer_name, customer_email,
			customer_phone, total_price, down_payment, payment_type, emi_periods, monthly_emi,
			due_date, pending_balance, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ItemID, sale.AdminUserID, sale.CustomerName, sale.CustomerEmail,
		sale.CustomerPhone, sale.TotalPrice, sale.DownPayment, sale.PaymentType,
		sale.EMIPeriods, sale.MonthlyEMI, sale.DueDate, sale.PendingBalance,
		sale.Status, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credit sale: %w", err)
	}
	return nil
}

// CreatePayment persiste una cuota del cronograma.
func (r *CreditRepo) CreatePayment(payment *entity.CreditPayment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO credit_payments (id, credit_sale_id, installment_no, amount_due, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.CreditSaleID, payment.InstallmentNo,
		payment.AmountDue, payment.DueDate, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credit payment: %w", err)
	}
	return nil
}

const creditSaleColumns = `id, item_id, admin_user_id, customer_name, customer_email,
	customer_phone, total_price, down_payment, payment_type, emi_periods, monthly_emi,
	due_date, pending_balance, status, created_at`

// GetSaleByID obtiene una venta a crédito por ID.
func (r *CreditRepo) GetSaleByID(id string) (*entity.CreditSale, error) {
	query := `SELECT ` + creditSaleColumns + ` FROM credit_sales WHERE id = $1`
	var s entity.CreditSale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ItemID, &s.AdminUserID, &s.CustomerName, &s.CustomerEmail,
		&s.CustomerPhone, &s.TotalPrice, &s.DownPayment, &s.PaymentType,
		&s.EMIPeriods, &s.MonthlyEMI, &s.DueDate, &s.PendingBalance,
		&s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit sale: %w", err)
	}
	return &s, nil
}

// ListSales devuelve todas las ventas a crédito, más recientes primero.
func (r *CreditRepo) ListSales() ([]entity.CreditSale, error) {
	return r.listSales(``)
}

// ListSalesByAdmin devuelve las ventas a crédito de un admin.
func (r *CreditRepo) ListSalesByAdmin(adminUserID string) ([]entity.CreditSale, error) {
	return r.listSales(`WHERE admin_user_id = $1`, adminUserID)
}

func (r *CreditRepo) listSales(where string, args ...any) ([]entity.CreditSale, error) {
	query := `SELECT ` + creditSaleColumns + ` FROM credit_sales ` + where + ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list credit sales: %w", err)
	}
	defer rows.Close()
	var list []entity.CreditSale
	for rows.Next() {
		var s entity.CreditSale
		if err := rows.Scan(&s.ID, &s.ItemID, &s.AdminUserID, &s.CustomerName, &s.CustomerEmail,
			&s.CustomerPhone, &s.TotalPrice, &s.DownPayment, &s.PaymentType,
			&s.EMIPeriods, &s.MonthlyEMI, &s.DueDate, &s.PendingBalance,
			&s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListPaymentsBySale devuelve el cronograma de cuotas de un crédito en orden.
func (r *CreditRepo) ListPaymentsBySale(creditSaleID string) ([]entity.CreditPayment, error) {
	query := `
		SELECT id, credit_sale_id, installment_no, amount_due, due_date, created_at
		FROM credit_payments WHERE credit_sale_id = $1 ORDER BY installment_no`
	rows, err := r.q.Query(context.Background(), query, creditSaleID)
	if err != nil {
		return nil, fmt.Errorf("list credit payments: %w", err)
	}
	defer rows.Close()
	var list []entity.CreditPayment
	for rows.Next() {
		var p entity.CreditPayment
		if err := rows.Scan(&p.ID, &p.CreditSaleID, &p.InstallmentNo, &p.AmountDue, &p.DueDate, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan credit payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// MarkCompleted pone el crédito en completed con saldo cero. Las filas de
// credit_payments no se tocan.
func (r *CreditRepo) MarkCompleted(id string) error {
	query := `UPDATE credit_sales SET status = 'completed', pending_balance = 0 WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("mark credit sale completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
