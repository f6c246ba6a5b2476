package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación de AssignmentRepository sobre PostgreSQL
// (usable con pool o tx).
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una asignación de stock a un admin.
func (r *AssignmentRepo) Create(assignment *entity.Assignment) error {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}
	query := `
		INSERT INTO assignments (id, item_id, admin_user_id, qty_assigned, source_lot_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		assignment.ID, assignment.ItemID, assignment.AdminUserID,
		assignment.QtyAssigned, assignment.SourceLotID, assignment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// ListByItem devuelve todas las asignaciones del item.
func (r *AssignmentRepo) ListByItem(itemID string) ([]entity.Assignment, error) {
	query := `
		SELECT id, item_id, admin_user_id, qty_assigned, source_lot_id, created_at
		FROM assignments WHERE item_id = $1`
	return r.list(query, itemID)
}

// ListByAdmin devuelve todas las asignaciones hechas a un admin.
func (r *AssignmentRepo) ListByAdmin(adminUserID string) ([]entity.Assignment, error) {
	query := `
		SELECT id, item_id, admin_user_id, qty_assigned, source_lot_id, created_at
		FROM assignments WHERE admin_user_id = $1`
	return r.list(query, adminUserID)
}

func (r *AssignmentRepo) list(query string, args ...any) ([]entity.Assignment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()
	var list []entity.Assignment
	for rows.Next() {
		var a entity.Assignment
		if err := rows.Scan(&a.ID, &a.ItemID, &a.AdminUserID, &a.QtyAssigned, &a.SourceLotID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ExistsByItem indica si el item tiene al menos una asignación.
func (r *AssignmentRepo) ExistsByItem(itemID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM assignments WHERE item_id = $1)`, itemID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists assignment: %w", err)
	}
	return exists, nil
}
