package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	CartUC    *usecase.CartUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authed := AuthMiddleware(deps.JWTSecret, deps.AuthUC)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", authed, authHandler.Me)

	// Products: lecturas públicas, mutaciones solo admin
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", authed, RequireAdmin(), productHandler.Create)
	products.Put("/:id", authed, RequireAdmin(), productHandler.Update)
	products.Delete("/:id", authed, RequireAdmin(), productHandler.Delete)

	// Users: listado para cualquier autenticado; perfil y baja solo self
	users := api.Group("/users", authed)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Put("/:id", RequireSelf("id"), userHandler.Update)
	users.Delete("/:id", RequireSelf("id"), userHandler.Delete)

	// Cart: siempre self-only
	cart := users.Group("/:id/cart", RequireSelf("id"))
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.List)
	cart.Post("/", cartHandler.Add)
	cart.Put("/:cartId", cartHandler.UpdateQuantity)
	cart.Delete("/:cartId", cartHandler.Remove)
}
