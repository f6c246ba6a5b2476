package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/ventas-pro/internal/application/audit"
	"github.com/jhoicas/ventas-pro/internal/application/catalog"
	"github.com/jhoicas/ventas-pro/internal/application/reports"
	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
	infrapdf "github.com/jhoicas/ventas-pro/internal/infrastructure/pdf"
	"github.com/jhoicas/ventas-pro/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/ventas-pro/internal/interfaces/http"
	"github.com/jhoicas/ventas-pro/pkg/config"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios atados al pool (las operaciones multi-statement reciben
	// repos atados a la tx a través de los runners).
	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	asgRepo := postgres.NewAssignmentRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	creditRepo := postgres.NewCreditRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	leadRepo := postgres.NewLeadRepository(pool)
	reportsRepo := postgres.NewReportsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewRecorder(auditRepo, log)

	stockUC := stock.NewUseCase(txRunner, itemRepo, lotRepo, asgRepo, saleRepo, userRepo, recorder)
	salesUC := sales.NewUseCase(txRunner, itemRepo, asgRepo, saleRepo, creditRepo, recorder)
	statementUC := sales.NewStatementUseCase(creditRepo, itemRepo, infrapdf.NewMarotoStatementGenerator())
	catalogUC := catalog.NewUseCase(categoryRepo, itemRepo, leadRepo, recorder)
	reportsUC := reports.NewUseCase(reportsRepo, creditRepo, auditRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockUC:     stockUC,
		SalesUC:     salesUC,
		StatementUC: statementUC,
		CatalogUC:   catalogUC,
		ReportsUC:   reportsUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
