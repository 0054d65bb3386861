package dto

import (
	"github.com/shopspring/decimal"
)

// BuyerPayload datos del comprador en una factura.
type BuyerPayload struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CartItemPayload una línea del carrito: producto del catálogo + cantidad.
type CartItemPayload struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"min=1"`
}

// DiscountPayload descuento opcional de la factura.
type DiscountPayload struct {
	Kind   string          `json:"kind" validate:"oneof=flat percentage"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
}

// CreateInvoiceRequest entrada para crear una factura. La empresa, la moneda
// y los impuestos por defecto se copian de la configuración vigente; los
// campos opcionales permiten sobreescribirlos solo para esta factura.
type CreateInvoiceRequest struct {
	Number         string           `json:"number"` // vacío = consecutivo automático
	Buyer          BuyerPayload     `json:"buyer"`
	Items          []CartItemPayload `json:"items"`
	Discount       *DiscountPayload `json:"discount"`
	ShippingAmount *decimal.Decimal `json:"shipping_amount"` // nil = sin envío
	TemplateID     string           `json:"template_id"`     // vacío = plantilla por defecto
}

// PreviewTotalsRequest entrada para calcular totales de un borrador sin persistir.
type PreviewTotalsRequest struct {
	Items          []CartItemPayload `json:"items"`
	Discount       *DiscountPayload  `json:"discount"`
	ShippingAmount *decimal.Decimal  `json:"shipping_amount"`
}

// LineItemResponse una línea de factura resuelta.
type LineItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

// TotalsResponse desglose de totales de la factura.
type TotalsResponse struct {
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	DiscountedSubtotal decimal.Decimal `json:"discounted_subtotal"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	ShippingAmount     decimal.Decimal `json:"shipping_amount"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
}

// InvoiceResponse salida de una factura persistida.
type InvoiceResponse struct {
	ID           string             `json:"id"`
	Number       string             `json:"number"`
	Date         string             `json:"date"` // YYYY-MM-DD
	Buyer        BuyerPayload       `json:"buyer"`
	Items        []LineItemResponse `json:"items"`
	CompanyName  string             `json:"company_name"`
	Discount     *DiscountPayload   `json:"discount,omitempty"`
	TaxMode      string             `json:"tax_mode"`
	TaxRate      decimal.Decimal    `json:"tax_rate"`
	TaxLabel     string             `json:"tax_label"`
	Totals       TotalsResponse     `json:"totals"`
	TemplateID   string             `json:"template_id"`
	CurrencyCode string             `json:"currency_code"`
}

// InvoiceListResponse historial de facturas (más recientes primero).
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Total int               `json:"total"`
}
