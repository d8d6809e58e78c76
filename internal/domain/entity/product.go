package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Inventory es un contador simple no negativo; no hay reserva ni bloqueo.
type Product struct {
	ID          string
	Name        string // único en todo el catálogo
	Description string
	Price       decimal.Decimal // no negativo
	Inventory   int
	Category    string // etiqueta opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
