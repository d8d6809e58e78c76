package entity

import "time"

// User representa una cuenta de la tienda.
// PaymentInfo se guarda como texto libre, sin validación de formato.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Address      string
	PaymentInfo  string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
