package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/application/usecase"
	"github.com/jhoicas/facturador/internal/infrastructure/render"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	SettingsUC    *usecase.SettingsUseCase
	ProductUC     *usecase.ProductUseCase
	DashboardUC   *usecase.DashboardUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	History       *billing.HistoryUseCase
	Export        *billing.ExportUseCase
	Registry      *render.Registry
}

// Router registra las rutas de la API. Todo es local y de un solo
// usuario: no hay autenticación.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Empresa
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/company", companyHandler.Get)
	api.Put("/company", companyHandler.Save)

	// Configuración
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	api.Get("/settings", settingsHandler.Get)
	api.Put("/settings", settingsHandler.Update)
	api.Get("/settings/currencies", settingsHandler.Currencies)
	api.Get("/settings/tax-rates", settingsHandler.TaxRates)

	// Productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Facturas
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.History, deps.Export)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/preview", invoiceHandler.PreviewTotals)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/export", invoiceHandler.Export)

	// Dashboard y plantillas
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Registry)
	api.Get("/dashboard", dashboardHandler.Stats)
	api.Get("/templates", dashboardHandler.Templates)
}
