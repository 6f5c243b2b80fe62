package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MutationState resultado estructurado de una escritura fallida: errores por
// campo cuando falló la validación, o solo Message cuando falló la persistencia.
// Un *MutationState nil significa éxito.
type MutationState struct {
	Errors  map[string][]string `json:"errors,omitempty"`
	Message string              `json:"message"`
}

// PagesResponse total de páginas de un listado filtrado.
type PagesResponse struct {
	TotalPages int `json:"totalPages"`
}

// DeleteResponse confirmación corta de un borrado.
type DeleteResponse struct {
	Message string `json:"message"`
}
