package dto

// CustomerFormRequest entrada cruda del formulario de cliente (crear y editar).
type CustomerFormRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	ImageURL string `json:"image_url" form:"image_url"`
}

// CustomerResponse proyección de un cliente.
type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}
