// Package pdf genera la variante vectorial nativa de la factura usando
// Maroto v2. A diferencia de la exportación rasterizada, aquí el texto es
// seleccionable y el archivo pesa una fracción; el layout es fijo y no
// sigue la plantilla visual elegida.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + tagline       │  INVOICE + N° + Fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: comprador + contacto                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Description | Qty | Unit Price | Total              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / Envío / TOTAL   │
//	│  FOOTER: agradecimiento                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/facturador/internal/infrastructure/render"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 23, Blue: 42}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Generator produce el PDF vectorial a partir del mismo view-model que
// consumen las plantillas rasterizadas: un solo contrato de datos para
// ambas rutas de exportación.
type Generator struct{}

// NewGenerator construye el generador.
func NewGenerator() *Generator { return &Generator{} }

// Generate genera el PDF y devuelve sus bytes.
func (g *Generator) Generate(vm render.ViewModel) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+vm.Number, true).
		WithAuthor(vm.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(vm))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRows(vm)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(vm.Items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("No items added yet", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	for _, r := range tableItemRows(vm) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(vm)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Size: 9, Align: align.Center, Color: colorGray, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa + tagline (izq) y INVOICE + número + fecha (der).
func headerRow(vm render.ViewModel) core.Row {
	left := col.New(7).Add(
		text.New(nonEmpty(vm.Company.Name, "Your Company"), props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		}),
	)
	if vm.Company.Tagline != "" {
		left.Add(text.New(vm.Company.Tagline, props.Text{
			Size: 9, Top: 10, Color: colorGray,
		}))
	}

	return row.New(20).Add(
		left,
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(vm.Number, props.Text{
				Size: 10, Align: align.Right, Top: 9,
			}),
			text.New(vm.Date, props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// billToRows: bloque del comprador. Solo se emiten las líneas con datos.
func billToRows(vm render.ViewModel) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(nonEmpty(vm.Buyer.Name, "—"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 1,
			}),
		)),
	}
	for _, detail := range []string{vm.Buyer.Email, vm.Buyer.Phone, vm.Buyer.Address} {
		if detail == "" {
			continue
		}
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(detail, props.Text{Size: 8, Color: colorGray, Top: 0.5}),
		)))
	}
	return rows
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de factura.
func tableItemRows(vm render.ViewModel) []core.Row {
	result := make([]core.Row, 0, len(vm.Items))
	for _, it := range vm.Items {
		result = append(result, row.New(7).Add(
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				vm.Money(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				vm.Money(it.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRows: bloque de totales a la derecha. Las filas de descuento,
// impuesto y envío solo aparecen cuando aplican; la última fila siempre
// es el gran total.
func totalsRows(vm render.ViewModel) []core.Row {
	var rows []core.Row
	for _, tr := range vm.TotalRows() {
		labelStyle := props.Text{Size: 9, Align: align.Right, Right: 2}
		valueStyle := props.Text{Size: 9, Align: align.Right, Right: 1}
		height := 6.0
		if tr.Grand {
			labelStyle = props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 2, Top: 1,
			}
			valueStyle = props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Right: 1, Top: 1,
			}
			height = 9
		}
		rows = append(rows, row.New(height).Add(
			col.New(6),
			col.New(3).Add(text.New(tr.Label, labelStyle)),
			col.New(3).Add(text.New(tr.Value, valueStyle)),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
