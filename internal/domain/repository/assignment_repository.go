package repository

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// AssignmentRepository define el puerto de persistencia para Assignment.
type AssignmentRepository interface {
	Create(assignment *entity.Assignment) error
	// ListByItem devuelve todas las asignaciones del item; el libro de stock
	// las pliega en memoria (global y por admin).
	ListByItem(itemID string) ([]entity.Assignment, error)
	ListByAdmin(adminUserID string) ([]entity.Assignment, error)
	// ExistsByItem indica si el item tiene al menos una asignación
	// (guardia de deleteInventoryItem).
	ExistsByItem(itemID string) (bool, error)
}
