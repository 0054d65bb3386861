package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de descuento.
const (
	DiscountFlat       = "flat"       // resta un monto fijo al subtotal
	DiscountPercentage = "percentage" // resta subtotal × amount/100
)

// Modos de impuesto.
const (
	TaxModeNone     = "none"     // sin impuesto
	TaxModeExcluded = "excluded" // el impuesto se suma sobre el subtotal descontado
	TaxModeIncluded = "included" // la tarifa ya viene embebida en los precios; no suma nada
)

// LineItem una línea de la factura. Total = UnitPrice × Quantity, recalculado
// cada vez que cambia el precio o la cantidad; nunca se edita a mano.
type LineItem struct {
	ProductID   string
	ProductName string
	Description string
	UnitPrice   decimal.Decimal
	Quantity    int
	Total       decimal.Decimal
}

// Discount descuento aplicado una sola vez sobre la suma de los totales de línea.
type Discount struct {
	Kind   string // DiscountFlat | DiscountPercentage
	Amount decimal.Decimal
	Label  string
}

// TaxPolicy política de impuesto de la factura.
type TaxPolicy struct {
	Mode  string          // TaxModeNone | TaxModeExcluded | TaxModeIncluded
	Rate  decimal.Decimal // porcentaje en [0,100]
	Label string          // "Tax", "GST", "IVA", ...
}

// ShippingCharge cargo de envío opcional.
type ShippingCharge struct {
	Enabled bool
	Amount  decimal.Decimal
}

// InvoiceTotals desglose derivado de totales. Nunca se edita: siempre se
// recalcula desde las líneas + descuento + impuesto + envío.
// No se aplica clamping: un descuento mayor al subtotal produce un
// gran total negativo y se muestra tal cual.
type InvoiceTotals struct {
	Subtotal           decimal.Decimal
	DiscountAmount     decimal.Decimal
	DiscountedSubtotal decimal.Decimal
	TaxAmount          decimal.Decimal
	ShippingAmount     decimal.Decimal
	GrandTotal         decimal.Decimal
}

// Invoice registro persistido de una factura. La empresa, la moneda y la
// política de impuesto se copian al crearla: cambios posteriores en la
// configuración no alteran facturas históricas.
type Invoice struct {
	ID           string
	Number       string
	Date         time.Time
	Buyer        Buyer
	Items        []LineItem
	Company      Company // snapshot al momento de creación
	Discount     *Discount
	Tax          TaxPolicy
	Shipping     ShippingCharge
	Totals       InvoiceTotals
	TemplateID   string
	CurrencyCode string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
