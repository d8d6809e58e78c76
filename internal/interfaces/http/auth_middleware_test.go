package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	apphttp "github.com/jhoicas/tienda-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testAdminID   = "00000000-0000-0000-0000-000000000002"
	testIssuer    = "tienda-api-test"
	testExpMin    = 60
)

// fakeResolver resuelve identidades desde un mapa en memoria; un id ausente
// simula una cuenta borrada después de emitir el token.
type fakeResolver struct {
	identities map[string]*dto.IdentityResponse
}

func (f *fakeResolver) Resolve(userID string) (*dto.IdentityResponse, error) {
	id, ok := f.identities[userID]
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return id, nil
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{identities: map[string]*dto.IdentityResponse{
		testUserID:  {ID: testUserID, Email: "shane@gmail.com", IsAdmin: false},
		testAdminID: {ID: testAdminID, Email: "joe@gmail.com", IsAdmin: true},
	}}
}

// buildAdminApp construye una app Fiber mínima con una ruta protegida por
// AuthMiddleware + RequireAdmin y un handler dummy que registra si fue alcanzado.
func buildAdminApp(resolver *fakeResolver, reached *bool) *fiber.App {
	app := fiber.New()
	app.Post("/admin-only",
		apphttp.AuthMiddleware(testJWTSecret, resolver),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			*reached = true
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

// tokenFor genera un JWT firmado para el usuario indicado.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAdmin — el gate debe cortar el pipeline, no solo marcar el fallo
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireAdmin_AdminAccede(t *testing.T) {
	var reached bool
	app := buildAdminApp(newFakeResolver(), &reached)

	resp := doRequest(t, app, http.MethodPost, "/admin-only", tokenFor(t, testAdminID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "admin debe poder acceder")
	assert.True(t, reached, "el handler debe ejecutarse para un admin")
}

func TestRequireAdmin_NoAdminBloqueado_SinEjecutarHandler(t *testing.T) {
	var reached bool
	app := buildAdminApp(newFakeResolver(), &reached)

	resp := doRequest(t, app, http.MethodPost, "/admin-only", tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un usuario sin flag de admin debe recibir 403")
	assert.False(t, reached,
		"el handler NO debe ejecutarse cuando el gate de admin falla")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireAdmin_SinAuthHeader_Retorna401(t *testing.T) {
	var reached bool
	app := buildAdminApp(newFakeResolver(), &reached)

	resp := doRequest(t, app, http.MethodPost, "/admin-only", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, reached)
}

func TestRequireAdmin_TokenInvalido_Retorna401(t *testing.T) {
	var reached bool
	app := buildAdminApp(newFakeResolver(), &reached)

	resp := doRequest(t, app, http.MethodPost, "/admin-only", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, reached)
}

func TestRequireAdmin_TokenExpirado_Retorna401(t *testing.T) {
	var reached bool
	app := buildAdminApp(newFakeResolver(), &reached)

	tok, err := pkgjwt.Generate(testJWTSecret, testAdminID, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodPost, "/admin-only", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token expirado debe retornar 401 aunque la firma sea válida")
}

func TestAuthMiddleware_CuentaBorrada_Retorna401(t *testing.T) {
	// Token con firma y expiración válidas, pero el usuario ya no existe.
	var reached bool
	app := buildAdminApp(newFakeResolver(), &reached)

	ghost := "00000000-0000-0000-0000-00000000dead"
	resp := doRequest(t, app, http.MethodPost, "/admin-only", tokenFor(t, ghost))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token de una cuenta borrada debe dejar de valer")
	assert.False(t, reached)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireSelf — rutas de recursos propios
// ──────────────────────────────────────────────────────────────────────────────

func buildSelfApp(resolver *fakeResolver) *fiber.App {
	app := fiber.New()
	app.Get("/users/:id/cart",
		apphttp.AuthMiddleware(testJWTSecret, resolver),
		apphttp.RequireSelf("id"),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user": c.Params("id")})
		},
	)
	return app
}

func TestRequireSelf_MismoUsuarioAccede(t *testing.T) {
	app := buildSelfApp(newFakeResolver())

	resp := doRequest(t, app, http.MethodGet, "/users/"+testUserID+"/cart", tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireSelf_OtroUsuarioBloqueado(t *testing.T) {
	// shane intenta entrar al carrito de joe: 403.
	app := buildSelfApp(newFakeResolver())

	resp := doRequest(t, app, http.MethodGet, "/users/"+testAdminID+"/cart", tokenFor(t, testUserID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un usuario no debe acceder a recursos de otro aunque esté autenticado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de la identidad resuelta
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeIdentidad(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret, newFakeResolver()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"email":    apphttp.GetEmail(c),
			"is_admin": apphttp.GetIsAdmin(c),
		})
	})

	resp := doRequest(t, app, http.MethodGet, "/me", tokenFor(t, testAdminID))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testAdminID, body["user_id"])
	assert.Equal(t, "joe@gmail.com", body["email"])
	assert.Equal(t, true, body["is_admin"])
}
