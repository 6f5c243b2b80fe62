package entity

// Customer representa un cliente del negocio.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
