package entity

import "time"

// Category representa una categoría de artículos. Cada admin gestiona el
// stock que se le asigna dentro de su categoría.
type Category struct {
	ID        string
	Name      string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
