package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/application/usecase"
	"github.com/jhoicas/facturador/internal/infrastructure/export"
	"github.com/jhoicas/facturador/internal/infrastructure/localstore"
	infrapdf "github.com/jhoicas/facturador/internal/infrastructure/pdf"
	"github.com/jhoicas/facturador/internal/infrastructure/render"
	httpRouter "github.com/jhoicas/facturador/internal/interfaces/http"
	"github.com/jhoicas/facturador/pkg/config"
	"github.com/jhoicas/facturador/pkg/logger"
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
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	store, err := localstore.NewStore(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén local")
	}

	productRepo := localstore.NewProductRepository(store)
	invoiceRepo := localstore.NewInvoiceRepository(store)
	companyRepo := localstore.NewCompanyRepository(store)
	settingsRepo := localstore.NewSettingsRepository(store)

	settingsUC := usecase.NewSettingsUseCase(settingsRepo, cfg.Billing.DefaultCurrency, cfg.Billing.DefaultTemplate)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := usecase.NewDashboardUseCase(invoiceRepo, productRepo, settingsUC)

	createInvoiceUC := billing.NewCreateInvoiceUseCase(
		productRepo, invoiceRepo, companyRepo, settingsUC, log,
	)
	historyUC := billing.NewHistoryUseCase(invoiceRepo)

	registry := render.NewRegistry()
	exporter := export.New(export.Config{
		Scale:       cfg.Export.Scale,
		JPEGQuality: cfg.Export.JPEGQuality,
	})
	exportUC := billing.NewExportUseCase(
		invoiceRepo, registry, exporter, infrapdf.NewGenerator(), log,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la exportación rasterizada puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		SettingsUC:    settingsUC,
		ProductUC:     productUC,
		DashboardUC:   dashboardUC,
		CreateInvoice: createInvoiceUC,
		History:       historyUC,
		Export:        exportUC,
		Registry:      registry,
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
