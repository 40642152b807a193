package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/bibliostock/bibliostock-api/internal/interfaces/http"
)

func pingApp() *fiber.App {
	app := fiber.New()
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })
	return app
}

// Sem o arquivo de especificação a API deve subir normalmente (sem pânico),
// só sem a UI de documentação.
func TestRegisterSwagger_ArquivoAusenteNaoDerrubaAPI(t *testing.T) {
	app := pingApp()

	registered := apphttp.RegisterSwagger(app, filepath.Join(t.TempDir(), "swagger.json"), "Teste")
	assert.False(t, registered)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Com o arquivo presente a UI é registrada.
func TestRegisterSwagger_ArquivoPresenteRegistraUI(t *testing.T) {
	spec := filepath.Join(t.TempDir(), "swagger.json")
	minimal := `{"swagger":"2.0","info":{"title":"Teste","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(spec, []byte(minimal), 0o644))

	app := pingApp()
	registered := apphttp.RegisterSwagger(app, spec, "Teste")
	assert.True(t, registered)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
