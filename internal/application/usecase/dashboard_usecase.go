package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain/repository"
)

// DashboardUseCase estadísticas rápidas de la instalación.
type DashboardUseCase struct {
	invoices repository.InvoiceRepository
	products repository.ProductRepository
	settings *SettingsUseCase
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	invoices repository.InvoiceRepository,
	products repository.ProductRepository,
	settings *SettingsUseCase,
) *DashboardUseCase {
	return &DashboardUseCase{invoices: invoices, products: products, settings: settings}
}

// Stats cuenta facturas y productos y suma los grand totals del historial.
// La suma mezcla facturas de distintas monedas tal cual; el dashboard
// reporta en la moneda configurada actualmente.
func (uc *DashboardUseCase) Stats() (*dto.DashboardResponse, error) {
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	settings, err := uc.settings.Current()
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, inv := range invoices {
		revenue = revenue.Add(inv.Totals.GrandTotal)
	}

	return &dto.DashboardResponse{
		InvoiceCount: len(invoices),
		ProductCount: len(products),
		Revenue:      revenue,
		CurrencyCode: settings.CurrencyCode,
	}, nil
}
