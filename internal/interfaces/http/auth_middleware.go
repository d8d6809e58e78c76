package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

// Locals keys para la identidad resuelta en Fiber.
const (
	LocalUserID  = "user_id"
	LocalEmail   = "user_email"
	LocalIsAdmin = "user_is_admin"
)

// identityResolver es el contrato mínimo que necesita el middleware para
// convertir el user_id del token en una identidad viva. Lo implementa
// *auth.AuthUseCase; el uso de interfaz evita el import circular y permite
// fakes en tests.
type identityResolver interface {
	Resolve(userID string) (*dto.IdentityResponse, error)
}

// AuthMiddleware valida el Bearer Token JWT (firma y expiración) y resuelve
// la identidad contra la DB: un token firmado cuyo usuario ya no existe
// también es 401. Deja id, email e is_admin en c.Locals.
func AuthMiddleware(jwtSecret string, resolver identityResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		identity, err := resolver.Resolve(userID)
		if err != nil || identity == nil {
			// Cuenta borrada después de emitir el token, o fallo resolviendo: 401.
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, identity.ID)
		c.Locals(LocalEmail, identity.Email)
		c.Locals(LocalIsAdmin, identity.IsAdmin)
		return c.Next()
	}
}

// RequireAdmin corta el pipeline con 403 si la identidad resuelta no es
// admin; solo llama c.Next() cuando el chequeo pasa. Debe usarse DESPUÉS de
// AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad no resuelta"})
		}
		if !GetIsAdmin(c) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere rol de administrador"})
		}
		return c.Next()
	}
}

// RequireSelf corta el pipeline con 403 si el parámetro de ruta paramName no
// coincide con el usuario del token. Debe usarse DESPUÉS de AuthMiddleware.
func RequireSelf(paramName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "identidad no resuelta"})
		}
		if c.Params(paramName) != userID {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el recurso pertenece a otro usuario"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetIsAdmin devuelve el flag de admin del contexto (después del middleware de auth).
func GetIsAdmin(c *fiber.Ctx) bool {
	b, _ := c.Locals(LocalIsAdmin).(bool)
	return b
}
