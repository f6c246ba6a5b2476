// Package ledger implementa el libro de stock como servicio de dominio puro.
//
// No existe columna de saldo materializada: el disponible global y el
// disponible por admin se derivan siempre plegando en memoria las filas
// completas de lotes, asignaciones y ventas del item. Se recalcula en cada
// lectura; la consistencia es la del instante de la lectura dentro de la
// transacción que la envuelve (si la hay).
package ledger

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// TotalPurchased suma QtyPurchased sobre todos los lotes de un item.
// Los lotes compensatorios entran con su signo, así que el total puede bajar.
func TotalPurchased(lots []entity.InventoryLot) int {
	total := 0
	for _, l := range lots {
		total += l.QtyPurchased
	}
	return total
}

// TotalAssigned suma QtyAssigned sobre todas las asignaciones de un item.
func TotalAssigned(assignments []entity.Assignment) int {
	total := 0
	for _, a := range assignments {
		total += a.QtyAssigned
	}
	return total
}

// GlobalAvailable = total comprado − total asignado, para un item.
func GlobalAvailable(lots []entity.InventoryLot, assignments []entity.Assignment) int {
	return TotalPurchased(lots) - TotalAssigned(assignments)
}

// AdminAssigned suma lo asignado a un admin concreto para el item.
func AdminAssigned(assignments []entity.Assignment, adminUserID string) int {
	total := 0
	for _, a := range assignments {
		if a.AdminUserID == adminUserID {
			total += a.QtyAssigned
		}
	}
	return total
}

// AdminSold suma lo vendido por un admin concreto para el item. Las ventas
// a crédito ya están reflejadas aquí vía su fila Sale espejo.
func AdminSold(sales []entity.Sale, adminUserID string) int {
	total := 0
	for _, s := range sales {
		if s.AdminUserID == adminUserID {
			total += s.QtySold
		}
	}
	return total
}

// AdminAvailable = asignado al admin − vendido por el admin, para un item.
func AdminAvailable(assignments []entity.Assignment, sales []entity.Sale, adminUserID string) int {
	return AdminAssigned(assignments, adminUserID) - AdminSold(sales, adminUserID)
}
