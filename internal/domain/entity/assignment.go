package entity

import "time"

// Assignment es una transferencia de cantidad del pool global al cupo
// personal de un admin para un item. SourceLotID es informativo: referencia
// algún lote existente del item pero no se consume ni decrementa por lote.
//
// Invariante (verificado al crear, no por constraint de DB):
// Σ asignaciones de un item ≤ Σ cantidades de sus lotes.
type Assignment struct {
	ID          string
	ItemID      string
	AdminUserID string
	QtyAssigned int
	SourceLotID string
	CreatedAt   time.Time
}
