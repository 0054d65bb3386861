package billing

import (
	"strings"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
)

// HistoryUseCase consulta y depuración del historial de facturas.
type HistoryUseCase struct {
	invoices repository.InvoiceRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(invoices repository.InvoiceRepository) *HistoryUseCase {
	return &HistoryUseCase{invoices: invoices}
}

// List devuelve el historial completo, de más reciente a más antigua.
func (uc *HistoryUseCase) List() (*dto.InvoiceListResponse, error) {
	return uc.Search("")
}

// Search filtra el historial por número de factura o nombre del comprador
// (subcadena, sin distinguir mayúsculas). Query vacío devuelve todo.
func (uc *HistoryUseCase) Search(query string) (*dto.InvoiceListResponse, error) {
	invoices, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))

	out := &dto.InvoiceListResponse{Items: make([]dto.InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		if query != "" &&
			!strings.Contains(strings.ToLower(inv.Number), query) &&
			!strings.Contains(strings.ToLower(inv.Buyer.Name), query) {
			continue
		}
		out.Items = append(out.Items, *toInvoiceResponse(inv))
	}
	out.Total = len(out.Items)
	return out, nil
}

// Get devuelve una factura por ID.
func (uc *HistoryUseCase) Get(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina una factura del historial.
func (uc *HistoryUseCase) Delete(id string) error {
	return uc.invoices.Delete(id)
}

// ── Conversión entidad → DTO ──────────────────────────────────────────────────

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	out := &dto.InvoiceResponse{
		ID:     inv.ID,
		Number: inv.Number,
		Date:   inv.Date.Format("2006-01-02"),
		Buyer: dto.BuyerPayload{
			Name:    inv.Buyer.Name,
			Email:   inv.Buyer.Email,
			Phone:   inv.Buyer.Phone,
			Address: inv.Buyer.Address,
		},
		Items:        make([]dto.LineItemResponse, 0, len(inv.Items)),
		CompanyName:  inv.Company.Name,
		TaxMode:      inv.Tax.Mode,
		TaxRate:      inv.Tax.Rate,
		TaxLabel:     inv.Tax.Label,
		Totals:       toTotalsResponse(inv.Totals),
		TemplateID:   inv.TemplateID,
		CurrencyCode: inv.CurrencyCode,
	}
	for _, it := range inv.Items {
		out.Items = append(out.Items, dto.LineItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Description: it.Description,
			UnitPrice:   it.UnitPrice,
			Quantity:    it.Quantity,
			Total:       it.Total,
		})
	}
	if inv.Discount != nil {
		out.Discount = &dto.DiscountPayload{
			Kind:   inv.Discount.Kind,
			Amount: inv.Discount.Amount,
			Label:  inv.Discount.Label,
		}
	}
	return out
}

func toTotalsResponse(t entity.InvoiceTotals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal:           t.Subtotal,
		DiscountAmount:     t.DiscountAmount,
		DiscountedSubtotal: t.DiscountedSubtotal,
		TaxAmount:          t.TaxAmount,
		ShippingAmount:     t.ShippingAmount,
		GrandTotal:         t.GrandTotal,
	}
}
