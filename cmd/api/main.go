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

	"github.com/sajiloprint/press-api/internal/application/auth"
	"github.com/sajiloprint/press-api/internal/application/export"
	appledger "github.com/sajiloprint/press-api/internal/application/ledger"
	"github.com/sajiloprint/press-api/internal/application/usecase"
	"github.com/sajiloprint/press-api/internal/infrastructure/excel"
	infrapdf "github.com/sajiloprint/press-api/internal/infrastructure/pdf"
	"github.com/sajiloprint/press-api/internal/infrastructure/postgres"
	httpRouter "github.com/sajiloprint/press-api/internal/interfaces/http"
	"github.com/sajiloprint/press-api/pkg/config"
	"github.com/sajiloprint/press-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	paperRepo := postgres.NewPaperRepository(pool)
	entryRepo := postgres.NewStockEntryRepository(pool)
	quotationRepo := postgres.NewQuotationRepository(pool)
	estimateRepo := postgres.NewEstimateRepository(pool)
	challanRepo := postgres.NewChallanRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, settingsRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clientUC := usecase.NewClientUseCase(clientRepo)
	jobUC := usecase.NewJobUseCase(txRunner, jobRepo, clientRepo, settingsRepo)
	paperUC := usecase.NewPaperUseCase(paperRepo, entryRepo)
	stockUC := appledger.NewStockEntryUseCase(txRunner, paperRepo, entryRepo, jobRepo)
	quotationUC := usecase.NewQuotationUseCase(txRunner, quotationRepo, clientRepo, settingsRepo)
	estimateUC := usecase.NewEstimateUseCase(txRunner, estimateRepo, clientRepo, settingsRepo)
	challanUC := usecase.NewChallanUseCase(txRunner, challanRepo, clientRepo, jobRepo, settingsRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	pdfGen := infrapdf.NewMarotoGenerator()
	xlsxGen := excel.NewLedgerExporter()
	exportUC := export.NewUseCase(
		paperRepo, entryRepo, quotationRepo, challanRepo, settingsRepo,
		pdfGen, xlsxGen, pdfGen, pdfGen,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sajilo Print API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClientUC:    clientUC,
		JobUC:       jobUC,
		PaperUC:     paperUC,
		StockUC:     stockUC,
		QuotationUC: quotationUC,
		EstimateUC:  estimateUC,
		ChallanUC:   challanUC,
		EquipmentUC: equipmentUC,
		SettingsUC:  settingsUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("HTTP server listening")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
