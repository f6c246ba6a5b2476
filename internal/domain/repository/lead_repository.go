package repository

import (
	"time"

	"github.com/jhoicas/ventas-pro/internal/domain/entity"
)

// LeadRepository define el puerto de persistencia para Lead.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByID(id string) (*entity.Lead, error)
	List() ([]*entity.Lead, error)
	Update(lead *entity.Lead) error
	// ListFollowUpsDue devuelve los leads con seguimiento programado hasta la
	// fecha dada (inclusive), excluyendo los cerrados (won/lost).
	ListFollowUpsDue(until time.Time) ([]*entity.Lead, error)
	Delete(id string) error
}
