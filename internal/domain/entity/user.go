package entity

// User representa una cuenta con acceso al dashboard.
type User struct {
	ID           string
	Name         string
	Email        string // identificador único para login
	PasswordHash string // bcrypt hash, nunca plano después de persistir
}
