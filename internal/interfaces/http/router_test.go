package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/application/billing"
	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/application/usecase"
	"github.com/jhoicas/facturador/internal/infrastructure/export"
	"github.com/jhoicas/facturador/internal/infrastructure/localstore"
	"github.com/jhoicas/facturador/internal/infrastructure/pdf"
	"github.com/jhoicas/facturador/internal/infrastructure/render"
	"github.com/jhoicas/facturador/pkg/logger"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := localstore.NewStore(t.TempDir())
	require.NoError(t, err)

	products := localstore.NewProductRepository(store)
	invoices := localstore.NewInvoiceRepository(store)
	companyRepo := localstore.NewCompanyRepository(store)
	settingsUC := usecase.NewSettingsUseCase(localstore.NewSettingsRepository(store), "USD", "classic")
	registry := render.NewRegistry()
	log := logger.Nop()

	app := fiber.New()
	Router(app, RouterDeps{
		CompanyUC:     usecase.NewCompanyUseCase(companyRepo),
		SettingsUC:    settingsUC,
		ProductUC:     usecase.NewProductUseCase(products),
		DashboardUC:   usecase.NewDashboardUseCase(invoices, products, settingsUC),
		CreateInvoice: billing.NewCreateInvoiceUseCase(products, invoices, companyRepo, settingsUC, log),
		History:       billing.NewHistoryUseCase(invoices),
		Export: billing.NewExportUseCase(
			invoices, registry, export.New(export.Config{Scale: 2}), pdf.NewGenerator(), log,
		),
		Registry: registry,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func createProduct(t *testing.T, app *fiber.App, name, price string) dto.ProductResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/products/", map[string]interface{}{
		"name":       name,
		"unit_price": price,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var out dto.ProductResponse
	decode(t, resp, &out)
	return out
}

// ── Empresa y configuración ──────────────────────────────────────────────────

func TestCompanyEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/company", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "sin perfil configurado → 404")

	resp = doJSON(t, app, fiber.MethodPut, "/api/company", map[string]string{
		"name":    "Acme S.A.S.",
		"tagline": "Soluciones industriales",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/company", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var company dto.CompanyResponse
	decode(t, resp, &company)
	assert.Equal(t, "Acme S.A.S.", company.Name)
}

func TestSettingsEndpoints(t *testing.T) {
	app := newTestApp(t)

	// defaults sintetizados sin nada guardado
	resp := doJSON(t, app, fiber.MethodGet, "/api/settings", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var settings dto.SettingsResponse
	decode(t, resp, &settings)
	assert.Equal(t, "USD", settings.CurrencyCode)
	assert.Equal(t, "$", settings.CurrencySymbol)
	assert.Equal(t, "10", settings.TaxRate.String())

	// cambiar a INR sin tocar impuestos trae los defaults GST
	resp = doJSON(t, app, fiber.MethodPut, "/api/settings", map[string]string{
		"currency_code": "INR",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &settings)
	assert.Equal(t, "₹", settings.CurrencySymbol)
	assert.Equal(t, "GST", settings.TaxLabel)
	assert.Equal(t, "18", settings.TaxRate.String())

	resp = doJSON(t, app, fiber.MethodGet, "/api/settings/tax-rates?currency=INR", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, "/api/settings", map[string]string{
		"tax_mode": "bogus",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestProductEndpoints(t *testing.T) {
	app := newTestApp(t)

	created := createProduct(t, app, "Widget", "9.99")

	resp := doJSON(t, app, fiber.MethodGet, "/api/products/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.ProductListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Total)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/fantasma", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestProductBarcodeLookup(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/products/", map[string]interface{}{
		"name":       "Widget",
		"unit_price": "5",
		"barcode":    "7501234567890",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/barcode/7501234567890", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var product dto.ProductResponse
	decode(t, resp, &product)
	assert.Equal(t, "Widget", product.Name)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/barcode/0000000000000", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ── Facturas ─────────────────────────────────────────────────────────────────

func TestInvoiceLifecycle(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Widget", "10")

	resp := doJSON(t, app, fiber.MethodPost, "/api/invoices/", map[string]interface{}{
		"buyer": map[string]string{"name": "Cliente Uno"},
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 2},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var invoice dto.InvoiceResponse
	decode(t, resp, &invoice)
	assert.Equal(t, "INV-0001", invoice.Number)
	assert.Equal(t, "22", invoice.Totals.GrandTotal.String())

	resp = doJSON(t, app, fiber.MethodGet, "/api/invoices/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list dto.InvoiceListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Total)

	resp = doJSON(t, app, fiber.MethodDelete, "/api/invoices/"+invoice.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestInvoiceValidationErrors(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/invoices/", map[string]interface{}{
		"buyer": map[string]string{"name": ""},
		"items": []map[string]interface{}{},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/api/invoices/", map[string]interface{}{
		"buyer": map[string]string{"name": "Cliente"},
		"items": []map[string]interface{}{
			{"product_id": "fantasma", "quantity": 1},
		},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestInvoicePreviewTotals(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Widget", "10")

	resp := doJSON(t, app, fiber.MethodPost, "/api/invoices/preview", map[string]interface{}{
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 3},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var totals dto.TotalsResponse
	decode(t, resp, &totals)
	assert.Equal(t, "33", totals.GrandTotal.String())
}

func TestInvoiceExport(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Widget", "10")

	resp := doJSON(t, app, fiber.MethodPost, "/api/invoices/", map[string]interface{}{
		"buyer": map[string]string{"name": "Cliente Uno"},
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var invoice dto.InvoiceResponse
	decode(t, resp, &invoice)

	resp = doJSON(t, app, fiber.MethodGet, "/api/invoices/"+invoice.ID+"/export?format=png", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), `filename="INV-0001.png"`)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, data)

	resp = doJSON(t, app, fiber.MethodGet, "/api/invoices/"+invoice.ID+"/export?format=docx", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ── Dashboard y plantillas ───────────────────────────────────────────────────

func TestDashboardAndTemplates(t *testing.T) {
	app := newTestApp(t)
	product := createProduct(t, app, "Widget", "10")

	resp := doJSON(t, app, fiber.MethodPost, "/api/invoices/", map[string]interface{}{
		"buyer": map[string]string{"name": "Cliente Uno"},
		"items": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 2},
		},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var stats dto.DashboardResponse
	decode(t, resp, &stats)
	assert.Equal(t, 1, stats.InvoiceCount)
	assert.Equal(t, 1, stats.ProductCount)
	assert.Equal(t, "22", stats.Revenue.String())

	resp = doJSON(t, app, fiber.MethodGet, "/api/templates", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var templates dto.TemplateListResponse
	decode(t, resp, &templates)
	require.Len(t, templates.Items, 9)
	assert.Equal(t, "classic", templates.Items[0].ID)
}
