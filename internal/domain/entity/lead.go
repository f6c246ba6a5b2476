package entity

import "time"

// Estados del pipeline de un Lead.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusWon       = "won"
	LeadStatusLost      = "lost"
)

// Prioridades de un Lead.
const (
	LeadPriorityLow    = "low"
	LeadPriorityMedium = "medium"
	LeadPriorityHigh   = "high"
)

// Lead es un contacto del pipeline de ventas. Puede enlazar opcionalmente
// un Item de interés y una fecha de seguimiento. No interactúa con el
// libro de stock: es registro comercial puro.
type Lead struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Status       string // new, contacted, qualified, won, lost
	Priority     string // low, medium, high
	ItemID       *string
	FollowUpDate *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
