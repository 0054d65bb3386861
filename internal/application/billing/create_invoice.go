// Package billing orquesta el ciclo de vida de las facturas: creación
// con snapshot de empresa/moneda/impuestos, historial y exportación a
// documentos descargables.
package billing

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/application/usecase"
	"github.com/jhoicas/facturador/internal/domain"
	domainbilling "github.com/jhoicas/facturador/internal/domain/billing"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
	"github.com/jhoicas/facturador/pkg/logger"
)

// CreateInvoiceUseCase crea facturas resolviendo el carrito contra el
// catálogo y copiando la configuración vigente dentro del registro.
type CreateInvoiceUseCase struct {
	products repository.ProductRepository
	invoices repository.InvoiceRepository
	company  repository.CompanyRepository
	settings *usecase.SettingsUseCase
	log      *logger.Logger
}

// NewCreateInvoiceUseCase construye el caso de uso.
func NewCreateInvoiceUseCase(
	products repository.ProductRepository,
	invoices repository.InvoiceRepository,
	company repository.CompanyRepository,
	settings *usecase.SettingsUseCase,
	log *logger.Logger,
) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		products: products,
		invoices: invoices,
		company:  company,
		settings: settings,
		log:      log,
	}
}

// Create valida el borrador, calcula los totales y persiste la factura.
// La empresa, la moneda y la política de impuesto quedan copiadas dentro
// del registro: cambios posteriores de configuración no la alteran.
func (uc *CreateInvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if strings.TrimSpace(in.Buyer.Name) == "" {
		return nil, domain.ErrValidation
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrValidation
	}

	cart, err := uc.buildCart(in.Items)
	if err != nil {
		return nil, err
	}
	discount, err := toDiscount(in.Discount)
	if err != nil {
		return nil, err
	}

	settings, err := uc.settings.Current()
	if err != nil {
		return nil, err
	}
	shipping := shippingFrom(in.ShippingAmount, settings.EnableShipping)
	totals := domainbilling.ComputeTotals(cart, discount, settings.Tax, shipping)

	number := strings.TrimSpace(in.Number)
	if number == "" {
		if number, err = uc.invoices.NextNumber(); err != nil {
			return nil, err
		}
	}
	templateID := in.TemplateID
	if templateID == "" {
		templateID = settings.DefaultTemplate
	}

	var companySnapshot entity.Company
	if company, err := uc.company.Get(); err != nil {
		return nil, err
	} else if company != nil {
		companySnapshot = *company
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:     uuid.New().String(),
		Number: number,
		Date:   now,
		Buyer: entity.Buyer{
			Name:    strings.TrimSpace(in.Buyer.Name),
			Email:   in.Buyer.Email,
			Phone:   in.Buyer.Phone,
			Address: in.Buyer.Address,
		},
		Items:        cart,
		Company:      companySnapshot,
		Discount:     discount,
		Tax:          settings.Tax,
		Shipping:     shipping,
		Totals:       totals,
		TemplateID:   templateID,
		CurrencyCode: settings.CurrencyCode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.invoices.Create(invoice); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", invoice.ID).
		Str("number", invoice.Number).
		Str("grand_total", invoice.Totals.GrandTotal.String()).
		Msg("factura creada")

	return toInvoiceResponse(invoice), nil
}

// PreviewTotals calcula el desglose de un borrador sin persistir nada.
// Es el mismo pipeline de Create, así la vista previa nunca difiere del
// documento final.
func (uc *CreateInvoiceUseCase) PreviewTotals(in dto.PreviewTotalsRequest) (*dto.TotalsResponse, error) {
	cart, err := uc.buildCart(in.Items)
	if err != nil {
		return nil, err
	}
	discount, err := toDiscount(in.Discount)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settings.Current()
	if err != nil {
		return nil, err
	}
	shipping := shippingFrom(in.ShippingAmount, settings.EnableShipping)
	totals := domainbilling.ComputeTotals(cart, discount, settings.Tax, shipping)
	out := toTotalsResponse(totals)
	return &out, nil
}

// buildCart resuelve cada línea contra el catálogo. Un producto inexistente
// o una cantidad inválida abortan la operación completa.
func (uc *CreateInvoiceUseCase) buildCart(items []dto.CartItemPayload) (domainbilling.Cart, error) {
	var cart domainbilling.Cart
	for _, item := range items {
		product, err := uc.products.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if cart, err = domainbilling.AddLineItem(cart, product, item.Quantity); err != nil {
			return nil, err
		}
	}
	return cart, nil
}

func toDiscount(p *dto.DiscountPayload) (*entity.Discount, error) {
	if p == nil {
		return nil, nil
	}
	if p.Kind != entity.DiscountFlat && p.Kind != entity.DiscountPercentage {
		return nil, domain.ErrInvalidInput
	}
	if p.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Discount{Kind: p.Kind, Amount: p.Amount, Label: p.Label}, nil
}

// shippingFrom arma el cargo de envío: solo aplica si la instalación lo
// tiene habilitado y el borrador trae un monto.
func shippingFrom(amount *decimal.Decimal, enabled bool) entity.ShippingCharge {
	if !enabled || amount == nil {
		return entity.ShippingCharge{}
	}
	return entity.ShippingCharge{Enabled: true, Amount: *amount}
}
