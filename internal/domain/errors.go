package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes de regla de
// negocio son parte del contrato con la capa de presentación: se muestran
// tal cual al usuario en la respuesta {error}.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("Invalid data provided.")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")

	// Reglas de negocio del libro de stock y crédito.
	ErrNotEnoughGlobalStock = errors.New("Not enough global stock to assign")
	ErrNotEnoughAdminStock  = errors.New("Not enough stock to sell")
	ErrNoAvailableStock     = errors.New("No available stock")
	ErrNoSourceLot          = errors.New("No inventory lot found for item")
	ErrItemHasAssignments   = errors.New("Cannot delete item with existing assignments")
)
