package repository

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para la bitácora.
// Append es la única escritura; la bitácora jamás se edita ni se borra.
type AuditLogRepository interface {
	Append(entry *entity.AuditLog) error
	// ListRecent devuelve las entradas más recientes unidas con el nombre
	// del usuario, ordenadas por fecha descendente.
	ListRecent(limit int) ([]entity.AuditLogView, error)
}
