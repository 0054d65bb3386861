// Package billing contiene el cálculo puro de facturas: carrito de líneas
// y desglose de totales (subtotal → descuento → impuesto → envío → total).
//
// Todo es copy-on-write: las operaciones devuelven un carrito nuevo y las
// fallidas son no-ops sobre el original. No hay estado interno ni efectos.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
)

// Cart secuencia ordenada de líneas. El orden de inserción se preserva
// para presentación y exportación.
type Cart []entity.LineItem

// clone copia el carrito para no compartir el backing array con el caller.
func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// AddLineItem agrega una línea al final del carrito con
// Total = UnitPrice × Quantity. El producto viene resuelto del catálogo por
// el caller; nil significa que no existe (domain.ErrProductNotFound).
// Cantidades menores a 1 fallan con domain.ErrInvalidQuantity.
func AddLineItem(cart Cart, product *entity.Product, quantity int) (Cart, error) {
	if product == nil {
		return cart, domain.ErrProductNotFound
	}
	if quantity < 1 {
		return cart, domain.ErrInvalidQuantity
	}
	item := entity.LineItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Description: product.Description,
		UnitPrice:   product.UnitPrice,
		Quantity:    quantity,
		Total:       product.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
	out := cart.clone()
	return append(out, item), nil
}

// RemoveLineItem devuelve el carrito sin la línea en index, preservando el
// orden relativo de las demás. Índice inválido falla con domain.ErrIndexOutOfRange.
func RemoveLineItem(cart Cart, index int) (Cart, error) {
	if index < 0 || index >= len(cart) {
		return cart, domain.ErrIndexOutOfRange
	}
	out := make(Cart, 0, len(cart)-1)
	out = append(out, cart[:index]...)
	out = append(out, cart[index+1:]...)
	return out, nil
}

// UpdateQuantity cambia la cantidad de la línea en index y recalcula su total
// desde el precio unitario guardado en la línea (no se vuelve a consultar el
// catálogo). Cantidad ≤ 0 es un no-op tolerante: devuelve el carrito intacto.
func UpdateQuantity(cart Cart, index, quantity int) (Cart, error) {
	if index < 0 || index >= len(cart) {
		return cart, domain.ErrIndexOutOfRange
	}
	if quantity <= 0 {
		return cart, nil
	}
	out := cart.clone()
	out[index].Quantity = quantity
	out[index].Total = out[index].UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return out, nil
}

// Subtotal suma los totales de línea en orden.
func Subtotal(cart Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range cart {
		sum = sum.Add(item.Total)
	}
	return sum
}

// ComputeTotals produce el desglose completo de la factura. Es determinista,
// sin efectos, y nunca falla: un descuento mayor al subtotal produce totales
// negativos que se devuelven tal cual (sin clamping a cero).
//
//   - Descuento flat resta un monto fijo; percentage resta subtotal × amount/100.
//   - El impuesto solo se suma en modo "excluded", sobre el subtotal descontado.
//     "included" y "none" aportan cero (la tarifa ya está en los precios o no hay).
//   - El envío solo se suma si está habilitado.
func ComputeTotals(cart Cart, discount *entity.Discount, tax entity.TaxPolicy, shipping entity.ShippingCharge) entity.InvoiceTotals {
	hundred := decimal.NewFromInt(100)

	subtotal := Subtotal(cart)

	discountAmount := decimal.Zero
	if discount != nil {
		switch discount.Kind {
		case entity.DiscountPercentage:
			discountAmount = subtotal.Mul(discount.Amount).Div(hundred)
		case entity.DiscountFlat:
			discountAmount = discount.Amount
		}
	}
	discountedSubtotal := subtotal.Sub(discountAmount)

	taxAmount := decimal.Zero
	if tax.Mode == entity.TaxModeExcluded {
		taxAmount = discountedSubtotal.Mul(tax.Rate).Div(hundred)
	}

	shippingAmount := decimal.Zero
	if shipping.Enabled {
		shippingAmount = shipping.Amount
	}

	return entity.InvoiceTotals{
		Subtotal:           subtotal,
		DiscountAmount:     discountAmount,
		DiscountedSubtotal: discountedSubtotal,
		TaxAmount:          taxAmount,
		ShippingAmount:     shippingAmount,
		GrandTotal:         discountedSubtotal.Add(taxAmount).Add(shippingAmount),
	}
}
