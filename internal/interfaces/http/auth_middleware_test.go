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

	apphttp "github.com/bibliostock/bibliostock-api/internal/interfaces/http"
	pkgjwt "github.com/bibliostock/bibliostock-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret     = "test-secret-key-for-unit-tests"
	testUserID        = "00000000-0000-0000-0000-000000000001"
	testUserEmail     = "operador@livraria.com"
	testDefaultUserID = "00000000-0000-0000-0000-000000000099"
	testIssuer        = "bibliostock-test"
	testExpMin        = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com o AuthMiddleware e um
// handler que devolve o user id resolvido.
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami",
		apphttp.AuthMiddleware(testJWTSecret, testDefaultUserID),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"userId": apphttp.GetUserID(c)})
		},
	)
	return app
}

// validToken gera um JWT assinado com o segredo de teste.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserEmail, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /whoami e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeUserID(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.UserID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Sem header Authorization → passa com o usuário padrão (balcão único).
func TestAuthMiddleware_SemTokenUsaUsuarioPadrao(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testDefaultUserID, decodeUserID(t, resp))
}

// Caso 2: Token válido → o dono do token é o operador.
func TestAuthMiddleware_TokenValidoIdentificaOperador(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, validToken(t))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testUserID, decodeUserID(t, resp))
}

// Caso 3: Header presente mas malformado → 401 (não cai no padrão).
func TestAuthMiddleware_FormatoInvalidoRejeitado(t *testing.T) {
	app := buildTestApp()

	resp := doRequest(t, app, "Token abc123")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "Bearer ")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Token assinado com outro segredo → 401.
func TestAuthMiddleware_AssinaturaInvalidaRejeitada(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate("outro-segredo", testUserID, testUserEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Token expirado → 401.
func TestAuthMiddleware_TokenExpiradoRejeitado(t *testing.T) {
	app := buildTestApp()

	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserEmail, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
