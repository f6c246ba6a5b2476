// Package audit implementa la bitácora append-only del back office.
package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

// Recorder registra entradas de bitácora con el contrato "nunca lanza hacia
// afuera": cualquier fallo del insert se captura, se loguea como warning y
// se descarta. Las operaciones lo invocan DESPUÉS de confirmar su
// transacción (modo standalone del contrato), de modo que un fallo de
// bitácora no puede abortar ni revertir la operación principal.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder con el repo (atado al pool) y el logger.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record agrega una entrada. No devuelve error jamás.
func (r *Recorder) Record(userID, action, entityType, entityID, detail string) {
	entry := &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
		CreatedAt:  time.Now(),
	}
	if err := r.repo.Append(entry); err != nil {
		// La operación principal ya quedó confirmada; solo se deja rastro
		// operacional del fallo de bitácora.
		r.log.Warn().
			Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("fallo al escribir bitácora; entrada descartada")
	}
}
