package dto

// Las operaciones del back office responden siempre con una de estas dos
// formas planas; nada cruza la frontera HTTP como excepción.

// SuccessResponse cuerpo de éxito: {"success": "..."}.
type SuccessResponse struct {
	Success string `json:"success"`
}

// ErrorResponse cuerpo de error: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}
