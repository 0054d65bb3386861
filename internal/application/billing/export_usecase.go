package billing

import (
	"fmt"
	"time"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
	"github.com/jhoicas/facturador/internal/infrastructure/export"
	"github.com/jhoicas/facturador/internal/infrastructure/pdf"
	"github.com/jhoicas/facturador/internal/infrastructure/render"
	"github.com/jhoicas/facturador/pkg/logger"
)

// FormatPDFNative variante vectorial generada con Maroto, además de los
// formatos rasterizados del exportador.
const FormatPDFNative = "pdf-native"

// ExportResult artefacto descargable listo para servir.
type ExportResult struct {
	Filename string
	MIME     string
	Data     []byte
}

// ExportUseCase materializa una factura del historial como documento
// descargable: PNG/JPG/PDF rasterizados con la plantilla elegida, o PDF
// vectorial de layout fijo.
type ExportUseCase struct {
	invoices repository.InvoiceRepository
	registry *render.Registry
	exporter *export.Exporter
	native   *pdf.Generator
	log      *logger.Logger
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	invoices repository.InvoiceRepository,
	registry *render.Registry,
	exporter *export.Exporter,
	native *pdf.Generator,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		invoices: invoices,
		registry: registry,
		exporter: exporter,
		native:   native,
		log:      log,
	}
}

// Export genera el artefacto de la factura en el formato pedido. Un
// template desconocido en el registro cae a la plantilla clásica en vez
// de fallar: las facturas viejas siempre deben poder exportarse.
func (uc *ExportUseCase) Export(id, format string) (*ExportResult, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}

	vm := buildViewModel(invoice)
	basename := invoice.Number
	if basename == "" {
		basename = fmt.Sprintf("INV-%d", time.Now().UnixMilli())
	}

	started := time.Now()
	result, err := uc.generate(invoice, vm, basename, format)
	if err != nil {
		uc.log.Error().Err(err).
			Str("invoice_id", id).
			Str("format", format).
			Msg("exportación fallida")
		return nil, err
	}

	uc.log.Info().
		Str("invoice_id", id).
		Str("format", format).
		Str("filename", result.Filename).
		Int("bytes", len(result.Data)).
		Dur("elapsed", time.Since(started)).
		Msg("factura exportada")
	return result, nil
}

func (uc *ExportUseCase) generate(invoice *entity.Invoice, vm render.ViewModel, basename, format string) (*ExportResult, error) {
	if format == FormatPDFNative {
		data, err := uc.native.Generate(vm)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
		}
		return &ExportResult{
			Filename: basename + ".pdf",
			MIME:     "application/pdf",
			Data:     data,
		}, nil
	}

	tmpl := uc.registry.FindOrDefault(invoice.TemplateID)
	surface := render.NewSurface(tmpl, vm)

	switch f := export.Format(format); f {
	case export.FormatPNG:
		data, filename, err := uc.exporter.ExportRaster(surface, f, basename)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Filename: filename, MIME: "image/png", Data: data}, nil
	case export.FormatJPG:
		data, filename, err := uc.exporter.ExportRaster(surface, f, basename)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Filename: filename, MIME: "image/jpeg", Data: data}, nil
	case export.FormatPDF:
		data, filename, err := uc.exporter.ExportPDF(surface, basename)
		if err != nil {
			return nil, err
		}
		return &ExportResult{Filename: filename, MIME: "application/pdf", Data: data}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}

// buildViewModel arma el contrato de presentación desde el snapshot de la
// factura. Tanto las plantillas rasterizadas como el PDF vectorial
// consumen exactamente esta estructura.
func buildViewModel(inv *entity.Invoice) render.ViewModel {
	return render.ViewModel{
		Company:      inv.Company,
		Buyer:        inv.Buyer,
		Number:       inv.Number,
		Date:         inv.Date.Format("Jan 2, 2006"),
		Items:        inv.Items,
		Discount:     inv.Discount,
		Tax:          inv.Tax,
		Totals:       inv.Totals,
		CurrencyCode: inv.CurrencyCode,
	}
}
