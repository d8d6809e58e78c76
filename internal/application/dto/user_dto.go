package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// No acepta is_admin: el registro público nunca crea administradores.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	PaymentInfo string `json:"payment_info" validate:"omitempty,max=100"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateUserRequest entrada para actualizar el perfil propio (campos opcionales).
type UpdateUserRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	Password    *string `json:"password" validate:"omitempty,min=8"`
	Address     *string `json:"address"`
	PaymentInfo *string `json:"payment_info"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Address     string    `json:"address,omitempty"`
	PaymentInfo string    `json:"payment_info,omitempty"`
	IsAdmin     bool      `json:"is_admin"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IdentityResponse proyección mínima de identidad para GET /auth/me.
type IdentityResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}
