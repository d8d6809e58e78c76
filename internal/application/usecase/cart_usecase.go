package usecase

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CartUseCase operaciones del carrito de un usuario. La capa HTTP ya
// garantizó que userID es la identidad del token (rutas self-only).
type CartUseCase struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cartRepo, productRepo: productRepo}
}

// Add agrega quantity unidades de un producto al carrito. Si ya había línea
// para ese producto, acumula sobre ella (upsert atómico en el repo: dos adds
// concurrentes terminan en una fila con la suma). Retorna ErrProductNotFound
// si el producto no existe y ErrInvalidInput si la cantidad no es positiva.
func (uc *CartUseCase) Add(userID string, in dto.AddToCartRequest) (*dto.CartedProductResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	cp, err := uc.cartRepo.AddOrIncrement(userID, in.ProductID, in.Quantity)
	if err != nil {
		return nil, err
	}
	return toCartedProductResponse(cp), nil
}

// UpdateQuantity fija la cantidad de una línea propia. Retorna ErrNotFound si
// la línea no existe o pertenece a otro usuario (misma respuesta en ambos casos).
func (uc *CartUseCase) UpdateQuantity(userID, cartedID string, in dto.UpdateCartItemRequest) (*dto.CartedProductResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	cp, err := uc.cartRepo.UpdateQuantity(userID, cartedID, in.Quantity)
	if err != nil {
		return nil, err
	}
	return toCartedProductResponse(cp), nil
}

// Remove quita una línea propia del carrito. Misma política de ErrNotFound
// que UpdateQuantity.
func (uc *CartUseCase) Remove(userID, cartedID string) error {
	return uc.cartRepo.Remove(userID, cartedID)
}

// List devuelve el carrito con los productos expandidos, en orden de inserción.
func (uc *CartUseCase) List(userID string) (*dto.CartResponse, error) {
	items, err := uc.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, it := range items {
		out.Items = append(out.Items, dto.CartItemResponse{
			CartedID: it.CartedID,
			Product:  *toProductResponse(&it.Product),
			Quantity: it.Quantity,
		})
	}
	return out, nil
}

func toCartedProductResponse(cp *entity.CartedProduct) *dto.CartedProductResponse {
	if cp == nil {
		return nil
	}
	return &dto.CartedProductResponse{
		ID:        cp.ID,
		UserID:    cp.UserID,
		ProductID: cp.ProductID,
		Quantity:  cp.Quantity,
	}
}
