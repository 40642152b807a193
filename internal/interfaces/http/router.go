package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bibliostock/bibliostock-api/internal/application/analytics"
	"github.com/bibliostock/bibliostock-api/internal/application/auth"
	"github.com/bibliostock/bibliostock-api/internal/application/inventory"
	"github.com/bibliostock/bibliostock-api/internal/application/pricing"
	"github.com/bibliostock/bibliostock-api/internal/application/reports"
	"github.com/bibliostock/bibliostock-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	CategoryUC    *usecase.CategoryUseCase
	AuthorUC      *usecase.AuthorUseCase
	MovementUC    *inventory.RegisterMovementUseCase
	AdjustmentUC  *pricing.ApplyAdjustmentUseCase
	ReportUC      *reports.ReportUseCase
	ReportPDFUC   *reports.PDFUseCase
	DashboardUC   *analytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	DefaultUserID string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Identificação do operador: com token usa o dono do token, sem token
	// cai no usuário padrão resolvido na subida.
	identified := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.DefaultUserID))

	users := identified.Group("/users")
	users.Get("/getIdByEmail/:email", authHandler.GetIDByEmail)

	// Catálogo
	products := identified.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	categories := identified.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	authors := identified.Group("/authors")
	authorHandler := NewAuthorHandler(deps.AuthorUC)
	authors.Post("/", authorHandler.Create)
	authors.Get("/", authorHandler.List)
	authors.Get("/:id", authorHandler.GetByID)
	authors.Put("/:id", authorHandler.Update)
	authors.Delete("/:id", authorHandler.Delete)

	// Movimentações de estoque
	movements := identified.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)

	// Reajustes de preço
	adjustments := identified.Group("/price-adjustments")
	adjustmentHandler := NewAdjustmentHandler(deps.AdjustmentUC)
	adjustments.Post("/", adjustmentHandler.Apply)
	adjustments.Get("/history", adjustmentHandler.History)

	// Relatórios gerenciais (JSON ou ?format=pdf)
	reportsGroup := identified.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDFUC)
	reportsGroup.Get("/products-prices", reportHandler.Prices)
	reportsGroup.Get("/balance", reportHandler.Balance)
	reportsGroup.Get("/products-below-minimum", reportHandler.BelowMinimum)
	reportsGroup.Get("/products-per-category", reportHandler.PerCategory)
	reportsGroup.Get("/movements-history", reportHandler.MovementsHistory)

	// Painel
	dashboard := identified.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/overview", dashboardHandler.Overview)
}
