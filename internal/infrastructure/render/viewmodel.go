package render

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/pkg/currency"
)

// ViewModel es el contrato de datos que toda plantilla debe presentar
// completo: empresa, comprador, líneas, desglose de totales y moneda.
// Las nueve variantes visuales comparten exactamente este contrato.
type ViewModel struct {
	Company      entity.Company
	Buyer        entity.Buyer
	Number       string
	Date         string // ya formateada para presentación
	Items        []entity.LineItem
	Discount     *entity.Discount
	Tax          entity.TaxPolicy
	Totals       entity.InvoiceTotals
	CurrencyCode string
}

// Money formatea un monto con el símbolo de la moneda de la factura.
// Se usa para precios unitarios, totales de línea y todos los totales,
// de modo que el símbolo sea consistente en todo el documento.
func (vm ViewModel) Money(amount decimal.Decimal) string {
	return currency.Format(amount, vm.CurrencyCode)
}

// TotalRow una fila del bloque de totales ya resuelta para dibujar.
type TotalRow struct {
	Label string
	Value string
	Grand bool // fila del gran total (se dibuja con énfasis)
}

// TotalRows resuelve las filas de totales aplicando las reglas de
// visibilidad del contrato: descuento, impuesto y envío se ocultan
// cuando su monto es cero. Las plantillas dibujan esta lista tal cual,
// así ninguna variante puede desviarse del contrato.
func (vm ViewModel) TotalRows() []TotalRow {
	sym := currency.Symbol(vm.CurrencyCode)
	rows := []TotalRow{
		{Label: "Subtotal:", Value: sym + vm.Totals.Subtotal.StringFixed(2)},
	}

	if !vm.Totals.DiscountAmount.IsZero() {
		label := "Discount:"
		if vm.Discount != nil && vm.Discount.Label != "" {
			label = "Discount (" + vm.Discount.Label + "):"
		}
		rows = append(rows, TotalRow{
			Label: label,
			Value: "-" + sym + vm.Totals.DiscountAmount.StringFixed(2),
		})
	}

	if !vm.Totals.TaxAmount.IsZero() {
		label := vm.Tax.Label
		if label == "" {
			label = "Tax"
		}
		rows = append(rows, TotalRow{
			Label: label + " (" + vm.Tax.Rate.StringFixed(0) + "%):",
			Value: sym + vm.Totals.TaxAmount.StringFixed(2),
		})
	}

	if !vm.Totals.ShippingAmount.IsZero() {
		rows = append(rows, TotalRow{
			Label: "Shipping:",
			Value: sym + vm.Totals.ShippingAmount.StringFixed(2),
		})
	}

	rows = append(rows, TotalRow{
		Label: "Total:",
		Value: sym + vm.Totals.GrandTotal.StringFixed(2),
		Grand: true,
	})
	return rows
}
