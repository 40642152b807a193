package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/bibliostock/bibliostock-api/internal/application/analytics"
	"github.com/bibliostock/bibliostock-api/internal/application/auth"
	"github.com/bibliostock/bibliostock-api/internal/application/inventory"
	"github.com/bibliostock/bibliostock-api/internal/application/pricing"
	"github.com/bibliostock/bibliostock-api/internal/application/reports"
	"github.com/bibliostock/bibliostock-api/internal/application/usecase"
	infrapdf "github.com/bibliostock/bibliostock-api/internal/infrastructure/pdf"
	"github.com/bibliostock/bibliostock-api/internal/infrastructure/postgres"
	httpRouter "github.com/bibliostock/bibliostock-api/internal/interfaces/http"
	"github.com/bibliostock/bibliostock-api/pkg/config"
	"github.com/bibliostock/bibliostock-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	authorRepo := postgres.NewAuthorRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	historyRepo := postgres.NewAdjustmentHistoryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)
	pricingTxRunner := postgres.NewPricingTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, authorRepo, movementRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	authorUC := usecase.NewAuthorUseCase(authorRepo, productRepo)
	movementUC := inventory.NewRegisterMovementUseCase(txRunner, movementRepo)
	adjustmentUC := pricing.NewApplyAdjustmentUseCase(pricingTxRunner, categoryRepo, historyRepo)

	reportUC := reports.NewReportUseCase(productRepo, categoryRepo, movementRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportPDFUC := reports.NewPDFUseCase(reportUC, pdfGenerator)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, categoryRepo, movementRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Operador padrão: identidade usada quando a requisição chega sem token
	// (fluxo de balcão único da livraria).
	defaultUserID, err := authUC.ResolveDefaultUser(ctx, cfg.Identity.DefaultUserEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("resolver usuário padrão")
	}
	if defaultUserID == "" {
		log.Warn().
			Str("email", cfg.Identity.DefaultUserEmail).
			Msg("usuário padrão não encontrado; movimentações sem token ficarão sem atribuição")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	if !httpRouter.RegisterSwagger(app, "./docs/swagger.json", "BiblioStock API") {
		log.Warn().Str("arquivo", "./docs/swagger.json").Msg("swagger.json não encontrado; documentação desabilitada")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:     productUC,
		CategoryUC:    categoryUC,
		AuthorUC:      authorUC,
		MovementUC:    movementUC,
		AdjustmentUC:  adjustmentUC,
		ReportUC:      reportUC,
		ReportPDFUC:   reportPDFUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
		DefaultUserID: defaultUserID,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
