package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación del puerto LeadRepository sobre PostgreSQL.
type LeadRepo struct {
	pool *pgxpool.Pool
}

// NewLeadRepository construye el adaptador de persistencia para leads.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepo {
	return &LeadRepo{pool: pool}
}

const leadColumns = `id, name, email, phone, status, priority, item_id, follow_up_date, notes, created_at, updated_at`

// Create persiste un lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, status, priority, item_id, follow_up_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.pool.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Status, lead.Priority,
		lead.ItemID, lead.FollowUpDate, lead.Notes, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByID obtiene un lead por ID.
func (r *LeadRepo) GetByID(id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`
	var l entity.Lead
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.Priority,
		&l.ItemID, &l.FollowUpDate, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// List lista todos los leads, más recientes primero.
func (r *LeadRepo) List() ([]*entity.Lead, error) {
	return r.list(`SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`)
}

// ListFollowUpsDue devuelve los leads con seguimiento hasta la fecha dada,
// excluyendo los cerrados.
func (r *LeadRepo) ListFollowUpsDue(until time.Time) ([]*entity.Lead, error) {
	query := `
		SELECT ` + leadColumns + ` FROM leads
		WHERE follow_up_date IS NOT NULL AND follow_up_date <= $1
			AND status NOT IN ('won', 'lost')
		ORDER BY follow_up_date`
	return r.list(query, until)
}

func (r *LeadRepo) list(query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Status, &l.Priority,
			&l.ItemID, &l.FollowUpDate, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del lead.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET name = $2, email = $3, phone = $4, status = $5, priority = $6,
			item_id = $7, follow_up_date = $8, notes = $9, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Status, lead.Priority,
		lead.ItemID, lead.FollowUpDate, lead.Notes,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lead.
func (r *LeadRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
