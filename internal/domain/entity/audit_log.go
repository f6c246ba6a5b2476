package entity

import "time"

// Acciones registrables en la bitácora.
const (
	AuditActionCreate = "CREATE"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionAssign = "ASSIGN"
	AuditActionSell   = "SELL"
	AuditActionAdjust = "ADJUST"
)

// AuditLog es una entrada append-only de la bitácora: quién hizo qué sobre
// qué entidad. EntityType es una etiqueta libre (no una FK) y EntityID
// referencia el id de la fila afectada. Un fallo al insertar la entrada
// jamás debe abortar ni revertir la operación principal.
type AuditLog struct {
	ID         string
	UserID     string
	Action     string // CREATE, UPDATE, DELETE, ASSIGN, SELL, ADJUST
	EntityType string
	EntityID   string
	Detail     string
	CreatedAt  time.Time
}

// AuditLogView es una entrada de bitácora ya unida con el nombre del usuario,
// para consumo de presentación (orden descendente por fecha).
type AuditLogView struct {
	AuditLog
	UserName string
}
