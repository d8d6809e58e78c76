package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para las líneas de carrito.
type CartRepository interface {
	// AddOrIncrement inserta la línea (user, product, quantity) o, si ya existe
	// una para ese par, incrementa su cantidad de forma atómica. Devuelve la
	// fila resultante. Retorna domain.ErrProductNotFound si el producto no existe.
	AddOrIncrement(userID, productID string, quantity int) (*entity.CartedProduct, error)
	// UpdateQuantity fija la cantidad de la línea solo si pertenece a userID.
	// Retorna domain.ErrNotFound si no hay fila (ausente o de otro usuario).
	UpdateQuantity(userID, cartedID string, quantity int) (*entity.CartedProduct, error)
	// Remove borra la línea solo si pertenece a userID.
	// Retorna domain.ErrNotFound si no hay fila (ausente o de otro usuario).
	Remove(userID, cartedID string) error
	// ListByUser devuelve las líneas con su producto, en orden de inserción.
	ListByUser(userID string) ([]*entity.CartItem, error)
}
