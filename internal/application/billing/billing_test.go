package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/application/usecase"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/infrastructure/export"
	"github.com/jhoicas/facturador/internal/infrastructure/localstore"
	"github.com/jhoicas/facturador/internal/infrastructure/pdf"
	"github.com/jhoicas/facturador/internal/infrastructure/render"
	"github.com/jhoicas/facturador/pkg/logger"
)

type fixture struct {
	create  *CreateInvoiceUseCase
	history *HistoryUseCase
	export  *ExportUseCase

	productID string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := localstore.NewStore(t.TempDir())
	require.NoError(t, err)

	products := localstore.NewProductRepository(store)
	invoices := localstore.NewInvoiceRepository(store)
	company := localstore.NewCompanyRepository(store)
	settings := usecase.NewSettingsUseCase(localstore.NewSettingsRepository(store), "USD", "classic")
	log := logger.Nop()

	productUC := usecase.NewProductUseCase(products)
	created, err := productUC.Create(dto.CreateProductRequest{
		Name:      "Widget",
		UnitPrice: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	return &fixture{
		create:  NewCreateInvoiceUseCase(products, invoices, company, settings, log),
		history: NewHistoryUseCase(invoices),
		export: NewExportUseCase(
			invoices,
			render.NewRegistry(),
			export.New(export.Config{Scale: 2}),
			pdf.NewGenerator(),
			log,
		),
		productID: created.ID,
	}
}

func validRequest(f *fixture) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		Buyer: dto.BuyerPayload{Name: "Cliente Uno"},
		Items: []dto.CartItemPayload{{ProductID: f.productID, Quantity: 2}},
	}
}

// ── Creación ─────────────────────────────────────────────────────────────────

func TestCreate_FacturaCompleta(t *testing.T) {
	f := newFixture(t)

	got, err := f.create.Create(validRequest(f))
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, "INV-0001", got.Number, "sin número explícito usa el consecutivo")
	assert.Equal(t, "classic", got.TemplateID, "sin plantilla explícita usa la por defecto")
	assert.Equal(t, "USD", got.CurrencyCode)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].Total.Equal(decimal.NewFromInt(20)))
	// defaults de USD: Tax 10% excluido sobre el subtotal descontado
	assert.True(t, got.Totals.TaxAmount.Equal(decimal.NewFromInt(2)))
	assert.True(t, got.Totals.GrandTotal.Equal(decimal.NewFromInt(22)))
}

func TestCreate_NumeroYPlantillaExplicitos(t *testing.T) {
	f := newFixture(t)

	in := validRequest(f)
	in.Number = "FAC-123"
	in.TemplateID = "modern"
	got, err := f.create.Create(in)
	require.NoError(t, err)

	assert.Equal(t, "FAC-123", got.Number)
	assert.Equal(t, "modern", got.TemplateID)

	// el consecutivo no se consumió
	got2, err := f.create.Create(validRequest(f))
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", got2.Number)
}

func TestCreate_Validaciones(t *testing.T) {
	f := newFixture(t)

	sinComprador := validRequest(f)
	sinComprador.Buyer.Name = "   "
	_, err := f.create.Create(sinComprador)
	assert.ErrorIs(t, err, domain.ErrValidation, "comprador sin nombre")

	sinLineas := validRequest(f)
	sinLineas.Items = nil
	_, err = f.create.Create(sinLineas)
	assert.ErrorIs(t, err, domain.ErrValidation, "carrito vacío")

	productoFantasma := validRequest(f)
	productoFantasma.Items = []dto.CartItemPayload{{ProductID: "fantasma", Quantity: 1}}
	_, err = f.create.Create(productoFantasma)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	cantidadCero := validRequest(f)
	cantidadCero.Items = []dto.CartItemPayload{{ProductID: f.productID, Quantity: 0}}
	_, err = f.create.Create(cantidadCero)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	descuentoInvalido := validRequest(f)
	descuentoInvalido.Discount = &dto.DiscountPayload{Kind: "bogus", Amount: decimal.NewFromInt(5)}
	_, err = f.create.Create(descuentoInvalido)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DescuentoMayorAlSubtotal(t *testing.T) {
	f := newFixture(t)

	in := validRequest(f)
	in.Discount = &dto.DiscountPayload{Kind: entity.DiscountFlat, Amount: decimal.NewFromInt(100)}
	got, err := f.create.Create(in)
	require.NoError(t, err)

	// subtotal 20 − 100 = −80; el impuesto se calcula sobre el negativo
	assert.True(t, got.Totals.DiscountedSubtotal.Equal(decimal.NewFromInt(-80)),
		"no se aplica clamping: %s", got.Totals.DiscountedSubtotal)
	assert.True(t, got.Totals.GrandTotal.IsNegative())
}

func TestPreviewTotals_MismoPipelineSinPersistir(t *testing.T) {
	f := newFixture(t)

	totals, err := f.create.PreviewTotals(dto.PreviewTotalsRequest{
		Items: []dto.CartItemPayload{{ProductID: f.productID, Quantity: 3}},
	})
	require.NoError(t, err)
	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(30)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(33)))

	list, err := f.history.List()
	require.NoError(t, err)
	assert.Zero(t, list.Total, "la vista previa no persiste nada")
}

// ── Historial ────────────────────────────────────────────────────────────────

func TestHistory_ListaGetYDelete(t *testing.T) {
	f := newFixture(t)

	first, err := f.create.Create(validRequest(f))
	require.NoError(t, err)
	second, err := f.create.Create(validRequest(f))
	require.NoError(t, err)

	list, err := f.history.List()
	require.NoError(t, err)
	require.Equal(t, 2, list.Total)
	assert.Equal(t, second.ID, list.Items[0].ID, "más reciente primero")

	got, err := f.history.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Number, got.Number)

	require.NoError(t, f.history.Delete(first.ID))
	_, err = f.history.Get(first.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistory_BusquedaPorNumeroYComprador(t *testing.T) {
	f := newFixture(t)

	_, err := f.create.Create(validRequest(f))
	require.NoError(t, err)
	conNumero := validRequest(f)
	conNumero.Number = "FAC-777"
	conNumero.Buyer.Name = "Industrias Gamma"
	_, err = f.create.Create(conNumero)
	require.NoError(t, err)

	byNumber, err := f.history.Search("fac-7")
	require.NoError(t, err)
	require.Equal(t, 1, byNumber.Total, "matchea el número sin distinguir mayúsculas")
	assert.Equal(t, "FAC-777", byNumber.Items[0].Number)

	byBuyer, err := f.history.Search("gamma")
	require.NoError(t, err)
	assert.Equal(t, 1, byBuyer.Total)

	none, err := f.history.Search("zeta")
	require.NoError(t, err)
	assert.Zero(t, none.Total)

	all, err := f.history.Search("  ")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total, "query vacío devuelve todo")
}

// ── Exportación ──────────────────────────────────────────────────────────────

func TestExport_Formatos(t *testing.T) {
	f := newFixture(t)
	inv, err := f.create.Create(validRequest(f))
	require.NoError(t, err)

	cases := []struct {
		format   string
		mime     string
		filename string
	}{
		{"png", "image/png", "INV-0001.png"},
		{"jpg", "image/jpeg", "INV-0001.jpg"},
		{"pdf", "application/pdf", "INV-0001.pdf"},
		{"pdf-native", "application/pdf", "INV-0001.pdf"},
	}
	for _, tc := range cases {
		result, err := f.export.Export(inv.ID, tc.format)
		require.NoError(t, err, tc.format)
		assert.Equal(t, tc.mime, result.MIME)
		assert.Equal(t, tc.filename, result.Filename)
		assert.NotEmpty(t, result.Data)
	}
}

func TestExport_Errores(t *testing.T) {
	f := newFixture(t)
	inv, err := f.create.Create(validRequest(f))
	require.NoError(t, err)

	_, err = f.export.Export("fantasma", "png")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.export.Export(inv.ID, "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestExport_PlantillaDesconocidaCaeAClassic(t *testing.T) {
	f := newFixture(t)

	in := validRequest(f)
	in.TemplateID = "retro-futurista"
	inv, err := f.create.Create(in)
	require.NoError(t, err)

	result, err := f.export.Export(inv.ID, "png")
	require.NoError(t, err, "una plantilla desconocida no impide exportar")
	assert.NotEmpty(t, result.Data)
}
