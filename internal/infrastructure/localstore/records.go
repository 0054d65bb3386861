package localstore

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain/entity"
)

// Archivos del almacén.
const (
	companyFile  = "company.json"
	settingsFile = "settings.json"
	productsFile = "products.json"
	invoicesFile = "invoices.json"
)

// Defaults para campos ausentes en registros antiguos. Se aplican al
// decodificar, nunca dependiendo de valores cero accidentales.
const (
	defaultTemplateID = "classic"
	defaultCurrency   = "USD"
)

// ── Registros persistidos (forma en disco) ────────────────────────────────────

type companyRecord struct {
	Name      string    `json:"name"`
	Tagline   string    `json:"tagline,omitempty"`
	Address   string    `json:"address,omitempty"`
	TaxInfo   string    `json:"tax_info,omitempty"`
	LogoPath  string    `json:"logo_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type settingsRecord struct {
	Currency        string     `json:"currency,omitempty"`
	Tax             *taxRecord `json:"tax,omitempty"`
	EnableShipping  *bool      `json:"enable_shipping,omitempty"`
	DefaultTemplate string     `json:"default_template,omitempty"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type productRecord struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Barcode     string          `json:"barcode,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type buyerRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type lineItemRecord struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Description string          `json:"description,omitempty"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
}

type discountRecord struct {
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label,omitempty"`
}

type taxRecord struct {
	Mode  string          `json:"mode"`
	Rate  decimal.Decimal `json:"rate"`
	Label string          `json:"label,omitempty"`
}

type shippingRecord struct {
	Enabled bool            `json:"enabled"`
	Amount  decimal.Decimal `json:"amount"`
}

type totalsRecord struct {
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	DiscountedSubtotal decimal.Decimal `json:"discounted_subtotal"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	ShippingAmount     decimal.Decimal `json:"shipping_amount"`
	GrandTotal         decimal.Decimal `json:"grand_total"`
}

// invoiceRecord forma en disco de una factura. tax, shipping, discount,
// template y currency pueden faltar en registros creados por versiones
// viejas del esquema; al cargar se aplican los defaults.
type invoiceRecord struct {
	ID        string           `json:"id"`
	Number    string           `json:"number"`
	Date      time.Time        `json:"date"`
	Buyer     buyerRecord      `json:"buyer"`
	Items     []lineItemRecord `json:"items"`
	Company   companyRecord    `json:"company"`
	Discount  *discountRecord  `json:"discount,omitempty"`
	Tax       *taxRecord       `json:"tax,omitempty"`
	Shipping  *shippingRecord  `json:"shipping,omitempty"`
	Totals    totalsRecord     `json:"totals"`
	Template  string           `json:"template,omitempty"`
	Currency  string           `json:"currency,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// invoicesDocument el documento completo de historial, con el consecutivo.
type invoicesDocument struct {
	NextNumber int             `json:"next_number"`
	Invoices   []invoiceRecord `json:"invoices"`
}

// ── Conversión registro ↔ entidad ─────────────────────────────────────────────

func companyToEntity(r companyRecord) entity.Company {
	return entity.Company{
		Name:      r.Name,
		Tagline:   r.Tagline,
		Address:   r.Address,
		TaxInfo:   r.TaxInfo,
		LogoPath:  r.LogoPath,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func companyFromEntity(c entity.Company) companyRecord {
	return companyRecord{
		Name:      c.Name,
		Tagline:   c.Tagline,
		Address:   c.Address,
		TaxInfo:   c.TaxInfo,
		LogoPath:  c.LogoPath,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func invoiceToEntity(r invoiceRecord) *entity.Invoice {
	inv := &entity.Invoice{
		ID:     r.ID,
		Number: r.Number,
		Date:   r.Date,
		Buyer: entity.Buyer{
			Name:    r.Buyer.Name,
			Email:   r.Buyer.Email,
			Phone:   r.Buyer.Phone,
			Address: r.Buyer.Address,
		},
		Company:      companyToEntity(r.Company),
		Totals:       entity.InvoiceTotals(r.Totals),
		TemplateID:   r.Template,
		CurrencyCode: r.Currency,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	for _, it := range r.Items {
		inv.Items = append(inv.Items, entity.LineItem(it))
	}

	// Defaults de esquema para registros antiguos
	if r.Discount != nil {
		d := entity.Discount(*r.Discount)
		inv.Discount = &d
	}
	if r.Tax != nil {
		inv.Tax = entity.TaxPolicy(*r.Tax)
	} else {
		inv.Tax = entity.TaxPolicy{Mode: entity.TaxModeNone, Rate: decimal.Zero}
	}
	if r.Shipping != nil {
		inv.Shipping = entity.ShippingCharge(*r.Shipping)
	}
	if inv.TemplateID == "" {
		inv.TemplateID = defaultTemplateID
	}
	if inv.CurrencyCode == "" {
		inv.CurrencyCode = defaultCurrency
	}
	return inv
}

func invoiceFromEntity(inv *entity.Invoice) invoiceRecord {
	r := invoiceRecord{
		ID:     inv.ID,
		Number: inv.Number,
		Date:   inv.Date,
		Buyer: buyerRecord{
			Name:    inv.Buyer.Name,
			Email:   inv.Buyer.Email,
			Phone:   inv.Buyer.Phone,
			Address: inv.Buyer.Address,
		},
		Company:   companyFromEntity(inv.Company),
		Totals:    totalsRecord(inv.Totals),
		Template:  inv.TemplateID,
		Currency:  inv.CurrencyCode,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
	for _, it := range inv.Items {
		r.Items = append(r.Items, lineItemRecord(it))
	}
	if inv.Discount != nil {
		d := discountRecord(*inv.Discount)
		r.Discount = &d
	}
	tax := taxRecord(inv.Tax)
	r.Tax = &tax
	ship := shippingRecord(inv.Shipping)
	r.Shipping = &ship
	return r
}
