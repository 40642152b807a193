package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
)

// RegisterSwagger monta a UI do Swagger em /docs quando o arquivo de
// especificação existe. O middleware do contrib entra em pânico com arquivo
// ausente; sem o arquivo a API sobe normalmente, só sem a documentação.
// Devolve true quando a UI foi registrada.
func RegisterSwagger(app *fiber.App, filePath, title string) bool {
	if _, err := os.Stat(filePath); err != nil {
		return false
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    title,
	}))
	return true
}
