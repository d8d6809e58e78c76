package dto

// AddToCartRequest entrada para agregar un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateCartItemRequest entrada para cambiar la cantidad de una línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// CartedProductResponse salida de una línea de carrito (sin el producto expandido).
type CartedProductResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartItemResponse línea del carrito con su producto, para el listado.
type CartItemResponse struct {
	CartedID string          `json:"carted_id"`
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

// CartResponse carrito completo de un usuario, en orden de inserción.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}
