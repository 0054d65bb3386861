package dto

import "github.com/shopspring/decimal"

// UpdateSettingsRequest entrada para la configuración de facturación.
// Campos omitidos conservan su valor actual; al cambiar de moneda sin
// indicar impuestos se aplican los defaults de esa moneda (GST para INR).
type UpdateSettingsRequest struct {
	CurrencyCode    *string          `json:"currency_code"`
	TaxMode         *string          `json:"tax_mode"`
	TaxRate         *decimal.Decimal `json:"tax_rate"`
	TaxLabel        *string          `json:"tax_label"`
	EnableShipping  *bool            `json:"enable_shipping"`
	DefaultTemplate *string          `json:"default_template"`
}

// SettingsResponse salida de la configuración de facturación.
type SettingsResponse struct {
	CurrencyCode    string          `json:"currency_code"`
	CurrencySymbol  string          `json:"currency_symbol"`
	TaxMode         string          `json:"tax_mode"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	TaxLabel        string          `json:"tax_label"`
	EnableShipping  bool            `json:"enable_shipping"`
	DefaultTemplate string          `json:"default_template"`
}
