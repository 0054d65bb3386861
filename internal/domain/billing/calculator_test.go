package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func producto(id string, precio float64) *entity.Product {
	return &entity.Product{
		ID:        id,
		Name:      "Producto " + id,
		UnitPrice: decimal.NewFromFloat(precio),
	}
}

// carritoBase construye el carrito del escenario de referencia:
// una línea de 10.00 × 2 = 20.00.
func carritoBase(t *testing.T) billing.Cart {
	t.Helper()
	cart, err := billing.AddLineItem(nil, producto("p1", 10), 2)
	require.NoError(t, err)
	return cart
}

func sinImpuesto() entity.TaxPolicy {
	return entity.TaxPolicy{Mode: entity.TaxModeNone}
}

func sinEnvio() entity.ShippingCharge {
	return entity.ShippingCharge{}
}

// ──────────────────────────────────────────────────────────────────────────────
// AddLineItem
// ──────────────────────────────────────────────────────────────────────────────

func TestAddLineItem_CalculaTotalDeLinea(t *testing.T) {
	cart, err := billing.AddLineItem(nil, producto("p1", 12.50), 4)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.True(t, cart[0].Total.Equal(decimal.NewFromInt(50)),
		"Total de línea debe ser UnitPrice × Quantity (12.50 × 4 = 50)")
}

func TestAddLineItem_PreservaOrdenDeInsercion(t *testing.T) {
	cart, _ := billing.AddLineItem(nil, producto("a", 1), 1)
	cart, _ = billing.AddLineItem(cart, producto("b", 2), 1)
	cart, _ = billing.AddLineItem(cart, producto("c", 3), 1)

	require.Len(t, cart, 3)
	assert.Equal(t, "a", cart[0].ProductID)
	assert.Equal(t, "b", cart[1].ProductID)
	assert.Equal(t, "c", cart[2].ProductID)
}

func TestAddLineItem_ProductoInexistente(t *testing.T) {
	orig := carritoBase(t)
	cart, err := billing.AddLineItem(orig, nil, 1)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, orig, cart, "una operación fallida es no-op sobre el carrito")
}

func TestAddLineItem_CantidadInvalida(t *testing.T) {
	orig := carritoBase(t)
	cart, err := billing.AddLineItem(orig, producto("p2", 5), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, orig, cart)
}

func TestAddLineItem_NoMutaElCarritoOriginal(t *testing.T) {
	orig := carritoBase(t)
	_, err := billing.AddLineItem(orig, producto("p2", 5), 1)
	require.NoError(t, err)
	assert.Len(t, orig, 1, "el carrito original no debe cambiar (copy-on-write)")
}

// ──────────────────────────────────────────────────────────────────────────────
// RemoveLineItem / UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestRemoveLineItem_PreservaOrdenRelativo(t *testing.T) {
	cart, _ := billing.AddLineItem(nil, producto("a", 1), 1)
	cart, _ = billing.AddLineItem(cart, producto("b", 2), 1)
	cart, _ = billing.AddLineItem(cart, producto("c", 3), 1)

	out, err := billing.RemoveLineItem(cart, 1)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ProductID)
	assert.Equal(t, "c", out[1].ProductID)
}

func TestRemoveLineItem_IndiceInvalido(t *testing.T) {
	cart := carritoBase(t)
	for _, idx := range []int{-1, 1, 99} {
		out, err := billing.RemoveLineItem(cart, idx)
		assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
		assert.Equal(t, cart, out)
	}
}

func TestUpdateQuantity_RecalculaTotal(t *testing.T) {
	cart := carritoBase(t)
	out, err := billing.UpdateQuantity(cart, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, out[0].Quantity)
	assert.True(t, out[0].Total.Equal(decimal.NewFromInt(50)),
		"el total se recalcula desde el precio unitario guardado en la línea")
}

// Cantidad ≤ 0 es política tolerante: no-op, sin error, carrito intacto.
func TestUpdateQuantity_CantidadNoPositivaEsNoOp(t *testing.T) {
	cart := carritoBase(t)
	for _, q := range []int{0, -1, -99} {
		out, err := billing.UpdateQuantity(cart, 0, q)
		require.NoError(t, err)
		assert.Equal(t, cart, out, "cantidad ≤ 0 debe dejar el carrito sin cambios")
	}
}

func TestUpdateQuantity_IndiceInvalido(t *testing.T) {
	cart := carritoBase(t)
	_, err := billing.UpdateQuantity(cart, 3, 2)
	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeTotals — propiedades
// ──────────────────────────────────────────────────────────────────────────────

// Sin descuento, impuesto ni envío, el gran total es la suma de las líneas.
func TestComputeTotals_IdentidadSinAjustes(t *testing.T) {
	cart, _ := billing.AddLineItem(nil, producto("a", 19.99), 3)
	cart, _ = billing.AddLineItem(cart, producto("b", 0.01), 7)

	totals := billing.ComputeTotals(cart, nil, sinImpuesto(), sinEnvio())

	assert.True(t, totals.GrandTotal.Equal(billing.Subtotal(cart)),
		"grandTotal == sum(lineTotal) cuando no hay descuento/impuesto/envío")
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.ShippingAmount.IsZero())
}

// discountAmount == subtotal × amount/100 cuando kind=percentage.
func TestComputeTotals_DescuentoPorcentualProporcional(t *testing.T) {
	cart, _ := billing.AddLineItem(nil, producto("a", 80), 1)
	disc := &entity.Discount{Kind: entity.DiscountPercentage, Amount: decimal.NewFromInt(25)}

	totals := billing.ComputeTotals(cart, disc, sinImpuesto(), sinEnvio())

	assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromInt(20)),
		"25% de 80 debe ser 20")
	assert.True(t, totals.DiscountedSubtotal.Equal(decimal.NewFromInt(60)))
}

// El impuesto solo aplica en modo excluded; none e included aportan cero
// sin importar la tarifa.
func TestComputeTotals_ImpuestoSoloEnModoExcluded(t *testing.T) {
	cart := carritoBase(t)
	rate := decimal.NewFromInt(19)

	for _, mode := range []string{entity.TaxModeNone, entity.TaxModeIncluded} {
		totals := billing.ComputeTotals(cart, nil, entity.TaxPolicy{Mode: mode, Rate: rate}, sinEnvio())
		assert.True(t, totals.TaxAmount.IsZero(),
			"modo %q no debe sumar impuesto aunque la tarifa sea 19", mode)
	}

	totals := billing.ComputeTotals(cart, nil, entity.TaxPolicy{Mode: entity.TaxModeExcluded, Rate: rate}, sinEnvio())
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromFloat(3.8)),
		"excluded: 19% de 20 debe ser 3.80")
}

// El envío aporta exactamente su monto cuando está habilitado, cero si no.
func TestComputeTotals_EnvioIndependiente(t *testing.T) {
	cart := carritoBase(t)
	amount := decimal.NewFromFloat(7.5)

	off := billing.ComputeTotals(cart, nil, sinImpuesto(), entity.ShippingCharge{Enabled: false, Amount: amount})
	assert.True(t, off.ShippingAmount.IsZero())
	assert.True(t, off.GrandTotal.Equal(decimal.NewFromInt(20)))

	on := billing.ComputeTotals(cart, nil, sinImpuesto(), entity.ShippingCharge{Enabled: true, Amount: amount})
	assert.True(t, on.ShippingAmount.Equal(amount))
	assert.True(t, on.GrandTotal.Equal(decimal.NewFromFloat(27.5)))
}

// Escenario de referencia: [{10 × 2}], sin descuento, excluded 10%, envío 5
// → subtotal=20, tax=2, total=27.
func TestComputeTotals_EscenarioImpuestoYEnvio(t *testing.T) {
	cart := carritoBase(t)
	tax := entity.TaxPolicy{Mode: entity.TaxModeExcluded, Rate: decimal.NewFromInt(10)}
	shipping := entity.ShippingCharge{Enabled: true, Amount: decimal.NewFromInt(5)}

	totals := billing.ComputeTotals(cart, nil, tax, shipping)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(20)))
	assert.True(t, totals.DiscountedSubtotal.Equal(decimal.NewFromInt(20)))
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(2)))
	assert.True(t, totals.ShippingAmount.Equal(decimal.NewFromInt(5)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(27)))
}

// Mismo carrito con descuento del 50% → discountedSubtotal=10, tax=1, total=16.
func TestComputeTotals_EscenarioConDescuento(t *testing.T) {
	cart := carritoBase(t)
	disc := &entity.Discount{Kind: entity.DiscountPercentage, Amount: decimal.NewFromInt(50)}
	tax := entity.TaxPolicy{Mode: entity.TaxModeExcluded, Rate: decimal.NewFromInt(10)}
	shipping := entity.ShippingCharge{Enabled: true, Amount: decimal.NewFromInt(5)}

	totals := billing.ComputeTotals(cart, disc, tax, shipping)

	assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, totals.DiscountedSubtotal.Equal(decimal.NewFromInt(10)))
	assert.True(t, totals.TaxAmount.Equal(decimal.NewFromInt(1)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(16)))
}

// Un descuento flat mayor al subtotal produce totales negativos, sin clamping
// y sin error. Comportamiento observado; se tolera tal cual.
func TestComputeTotals_DescuentoExcesivoNoClampea(t *testing.T) {
	cart := carritoBase(t)
	disc := &entity.Discount{Kind: entity.DiscountFlat, Amount: decimal.NewFromInt(100)}

	totals := billing.ComputeTotals(cart, disc, sinImpuesto(), sinEnvio())

	assert.True(t, totals.DiscountedSubtotal.Equal(decimal.NewFromInt(-80)))
	assert.True(t, totals.GrandTotal.Equal(decimal.NewFromInt(-80)),
		"no se clampea a cero: el total negativo se devuelve tal cual")
}

func TestComputeTotals_CarritoVacio(t *testing.T) {
	totals := billing.ComputeTotals(nil, nil, sinImpuesto(), sinEnvio())
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}
