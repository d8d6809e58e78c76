package entity

import "time"

// CartedProduct es una línea del carrito: asocia un usuario con un producto
// y una cantidad positiva. A lo sumo una fila por (UserID, ProductID); un
// segundo add al mismo producto incrementa Quantity en la fila existente.
type CartedProduct struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem es la proyección de lectura del carrito: línea + producto.
type CartItem struct {
	CartedID string
	Product  Product
	Quantity int
}
