package dto

import "github.com/shopspring/decimal"

// DashboardResponse estadísticas rápidas de la instalación.
type DashboardResponse struct {
	InvoiceCount int             `json:"invoice_count"`
	ProductCount int             `json:"product_count"`
	Revenue      decimal.Decimal `json:"revenue"` // suma de grand totals del historial
	CurrencyCode string          `json:"currency_code"`
}

// TemplateResponse una plantilla visual disponible.
type TemplateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TemplateListResponse catálogo de plantillas en orden de presentación.
type TemplateListResponse struct {
	Items []TemplateResponse `json:"items"`
}
