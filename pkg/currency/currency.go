// Package currency es el catálogo de monedas soportadas y el formato
// monetario compartido por plantillas, historial y exportación.
//
// El contrato de formato es fijo: símbolo + monto con 2 decimales
// (ej. "$1250.00", "₹999.50"). Todas las vistas deben usar este paquete
// en lugar de formatear por su cuenta.
package currency

import "github.com/shopspring/decimal"

// Currency una moneda soportada.
type Currency struct {
	Code   string `json:"code"` // código ISO 4217
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Supported catálogo de monedas soportadas, en el orden de presentación.
var Supported = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr"},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$"},
	{Code: "SGD", Name: "Singapore Dollar", Symbol: "S$"},
	{Code: "HKD", Name: "Hong Kong Dollar", Symbol: "HK$"},
	{Code: "NZD", Name: "New Zealand Dollar", Symbol: "NZ$"},
}

// Find busca una moneda por código. Devuelve nil si no está soportada.
func Find(code string) *Currency {
	for i := range Supported {
		if Supported[i].Code == code {
			return &Supported[i]
		}
	}
	return nil
}

// Symbol devuelve el símbolo de la moneda, o "$" si el código no está soportado.
func Symbol(code string) string {
	if c := Find(code); c != nil {
		return c.Symbol
	}
	return "$"
}

// Format devuelve el monto formateado: símbolo + 2 decimales.
// Con un código desconocido devuelve solo el monto con 2 decimales.
func Format(amount decimal.Decimal, code string) string {
	c := Find(code)
	if c == nil {
		return amount.StringFixed(2)
	}
	return c.Symbol + amount.StringFixed(2)
}

// TaxRateOption una tarifa de impuesto sugerida para la UI de configuración.
type TaxRateOption struct {
	Rate decimal.Decimal `json:"rate"`
	Name string          `json:"name"`
}

// GSTRates tarifas GST (India).
var GSTRates = []TaxRateOption{
	{Rate: decimal.Zero, Name: "Exempt (0%)"},
	{Rate: decimal.NewFromFloat(0.25), Name: "Special Rate (0.25%)"},
	{Rate: decimal.NewFromInt(3), Name: "Essential Goods (3%)"},
	{Rate: decimal.NewFromInt(5), Name: "Basic Necessities (5%)"},
	{Rate: decimal.NewFromInt(12), Name: "Standard Rate (12%)"},
	{Rate: decimal.NewFromInt(18), Name: "Standard Rate (18%)"},
	{Rate: decimal.NewFromInt(28), Name: "Luxury Goods (28%)"},
}

// CommonRates tarifas genéricas para el resto de monedas.
var CommonRates = []TaxRateOption{
	{Rate: decimal.Zero, Name: "No Tax (0%)"},
	{Rate: decimal.NewFromInt(5), Name: "Low Rate (5%)"},
	{Rate: decimal.NewFromInt(8), Name: "Reduced Rate (8%)"},
	{Rate: decimal.NewFromInt(10), Name: "Standard Rate (10%)"},
	{Rate: decimal.NewFromInt(15), Name: "Standard Rate (15%)"},
	{Rate: decimal.NewFromInt(20), Name: "Standard Rate (20%)"},
	{Rate: decimal.NewFromInt(25), Name: "High Rate (25%)"},
}

// RatesFor devuelve las tarifas sugeridas según la moneda (GST para INR).
func RatesFor(code string) []TaxRateOption {
	if code == "INR" {
		return GSTRates
	}
	return CommonRates
}

// TaxDefaults valores de impuesto por defecto al cambiar de moneda.
type TaxDefaults struct {
	TaxMode        string // "excluded"
	TaxRate        decimal.Decimal
	TaxName        string
	EnableShipping bool
}

// DefaultTaxFor devuelve los impuestos por defecto de una moneda:
// INR usa GST 18%; el resto una tarifa genérica del 10%.
func DefaultTaxFor(code string) TaxDefaults {
	if code == "INR" {
		return TaxDefaults{
			TaxMode:        "excluded",
			TaxRate:        decimal.NewFromInt(18),
			TaxName:        "GST",
			EnableShipping: true,
		}
	}
	return TaxDefaults{
		TaxMode:        "excluded",
		TaxRate:        decimal.NewFromInt(10),
		TaxName:        "Tax",
		EnableShipping: true,
	}
}
