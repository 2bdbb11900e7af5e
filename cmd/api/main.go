package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/taller-api/internal/application/almacen"
	"github.com/tu-usuario/taller-api/internal/application/auth"
	"github.com/tu-usuario/taller-api/internal/application/ingest"
	"github.com/tu-usuario/taller-api/internal/application/reports"
	"github.com/tu-usuario/taller-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/taller-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/taller-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/taller-api/internal/interfaces/http"
	"github.com/tu-usuario/taller-api/pkg/config"
	"github.com/tu-usuario/taller-api/pkg/logger"
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

	partRepo := postgres.NewPartRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	serviceOrderRepo := postgres.NewServiceOrderRepository(pool)
	partRequestRepo := postgres.NewPartRequestRepository(pool)
	purchaseOrderRepo := postgres.NewPurchaseOrderRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	issueRepo := postgres.NewIssueRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo)
	partUC := usecase.NewPartUseCase(partRepo)
	serviceOrderUC := usecase.NewServiceOrderUseCase(serviceOrderRepo, vehicleRepo)
	partRequestUC := usecase.NewPartRequestUseCase(partRequestRepo, serviceOrderRepo, partRepo)
	purchaseOrderUC := usecase.NewPurchaseOrderUseCase(purchaseOrderRepo, partRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)

	receiveUC := almacen.NewReceiveUseCase(txRunner, purchaseOrderRepo, partRepo)
	issueUC := almacen.NewIssueUseCase(txRunner, serviceOrderRepo, partRepo)
	kardexUC := almacen.NewKardexUseCase(movementRepo, stockRepo, partRepo)

	reportsUC := reports.NewUseCase(
		partRepo, stockRepo, purchaseOrderRepo, receiptRepo,
		issueRepo, serviceOrderRepo, vehicleRepo,
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	importer := ingest.NewImporter(partRepo, purchaseOrderRepo)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		VehicleUC:       vehicleUC,
		PartUC:          partUC,
		ServiceOrderUC:  serviceOrderUC,
		PartRequestUC:   partRequestUC,
		PurchaseOrderUC: purchaseOrderUC,
		SupplierUC:      supplierUC,
		ReceiveUC:       receiveUC,
		IssueUC:         issueUC,
		KardexUC:        kardexUC,
		ReportsUC:       reportsUC,
		PDFGenerator:    pdfGenerator,
		Importer:        importer,
		JWTSecret:       cfg.JWT.Secret,
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
