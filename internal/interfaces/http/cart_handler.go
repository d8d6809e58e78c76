package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// CartHandler maneja el carrito. Todas las rutas son self-only: el router las
// monta detrás de AuthMiddleware + RequireSelf("id").
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List godoc
// @Summary      Listar el carrito propio
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario (debe ser el propio)"
// @Success      200  {object}  dto.CartResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Agregar producto al carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario (debe ser el propio)"
// @Param        body  body  dto.AddToCartRequest  true  "product_id y quantity"
// @Success      201   {object}  dto.CartedProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.Add(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser positiva"})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateQuantity godoc
// @Summary      Cambiar cantidad de una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del usuario (debe ser el propio)"
// @Param        cartId  path  string  true  "ID de la línea de carrito"
// @Param        body    body  dto.UpdateCartItemRequest  true  "quantity"
// @Success      200     {object}  dto.CartedProductResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart/{cartId} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateQuantity(c.Params("id"), c.Params("cartId"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser positiva"})
		case errors.Is(err, domain.ErrNotFound):
			// Línea ausente o de otro usuario: misma respuesta.
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de carrito no encontrada"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Quitar una línea del carrito
// @Tags         cart
// @Security     Bearer
// @Param        id      path  string  true  "ID del usuario (debe ser el propio)"
// @Param        cartId  path  string  true  "ID de la línea de carrito"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/cart/{cartId} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.Params("id"), c.Params("cartId")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de carrito no encontrada"})
		}
		return internalError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
