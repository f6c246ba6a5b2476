package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de AuditLogRepository sobre PostgreSQL
// (usable con pool o tx).
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Append inserta una entrada de bitácora. El Recorder de la capa de
// aplicación es quien traga el error: aquí solo se reporta.
func (r *AuditLogRepo) Append(entry *entity.AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO audit_logs (id, user_id, action, entity_type, entity_id, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID,
		entry.Detail, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent devuelve las entradas más recientes unidas con el nombre del
// usuario, descendente por fecha.
func (r *AuditLogRepo) ListRecent(limit int) ([]entity.AuditLogView, error) {
	query := `
		SELECT a.id, a.user_id, a.action, a.entity_type, a.entity_id, a.detail, a.created_at,
			COALESCE(u.name, '')
		FROM audit_logs a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.created_at DESC
		LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []entity.AuditLogView
	for rows.Next() {
		var v entity.AuditLogView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Action, &v.EntityType, &v.EntityID,
			&v.Detail, &v.CreatedAt, &v.UserName); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
