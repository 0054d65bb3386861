package render

import (
	"image/color"
	"strconv"
)

// layoutOpts perillas de estilo que diferencian a las variantes. El
// contenido y las reglas de visibilidad son idénticos para todas; solo
// cambia la presentación.
type layoutOpts struct {
	accent          color.Color
	headerBand      bool // banda de color de fondo en el encabezado
	headerRule      bool // regla horizontal bajo el encabezado
	tableHeaderFill bool // cabecera de tabla rellena con el acento
	centeredHeader  bool // encabezado centrado (variantes minimal/elegant)
	titleSize       float64
}

// muted devuelve un color intermedio entre el texto y el fondo para
// textos secundarios, de modo que siga siendo legible tras el override
// print-safe del exportador.
func muted(th Theme) color.Color {
	fr, fg_, fb, _ := th.Foreground.RGBA()
	br, bg_, bb, _ := th.Background.RGBA()
	mix := func(f, b uint32) uint8 { return uint8(((f*55 + b*45) / 100) >> 8) }
	return color.RGBA{R: mix(fr, br), G: mix(fg_, bg_), B: mix(fb, bb), A: 0xff}
}

// drawInvoice dibuja el documento completo: encabezado, comprador, tabla
// de líneas y bloque de totales. Todas las variantes delegan aquí con sus
// propias opciones; así el contrato de datos se cumple en las nueve.
func drawInvoice(c *canvas, vm ViewModel, th Theme, opts layoutOpts) error {
	fg := th.Foreground
	sec := muted(th)
	right := pageWidth - marginX
	if opts.titleSize == 0 {
		opts.titleSize = 24
	}

	// ── Encabezado ──
	y := 46.0
	headerText := fg
	if opts.headerBand {
		c.rect(0, 0, pageWidth, 128, opts.accent)
		headerText = th.Background
	}

	companyName := vm.Company.Name
	if companyName == "" {
		companyName = "Your Company"
	}
	if opts.centeredHeader {
		c.textCenter(companyName, pageWidth/2, y, opts.titleSize, true, headerText)
		y += opts.titleSize + 10
		if vm.Company.Tagline != "" {
			c.textCenter(vm.Company.Tagline, pageWidth/2, y, 11, false, sec)
			y += 18
		}
		c.textCenter("INVOICE", pageWidth/2, y+6, 15, true, opts.accent)
		c.textCenter("#"+vm.Number+"  ·  "+vm.Date, pageWidth/2, y+30, 10, false, sec)
		y += 56
	} else {
		c.text(companyName, marginX, y, opts.titleSize, true, headerText)
		ly := y + opts.titleSize + 8
		if vm.Company.Tagline != "" {
			c.text(vm.Company.Tagline, marginX, ly, 11, false, sec)
			ly += 17
		}
		if vm.Company.Address != "" {
			c.text(vm.Company.Address, marginX, ly, 10, false, sec)
			ly += 15
		}
		if vm.Company.TaxInfo != "" {
			c.text("Tax ID: "+vm.Company.TaxInfo, marginX, ly, 10, false, sec)
		}

		titleCol := opts.accent
		if opts.headerBand {
			titleCol = th.Background
		}
		c.textRight("INVOICE", right, y, 20, true, titleCol)
		c.textRight("Invoice #: "+vm.Number, right, y+30, 11, false, headerText)
		c.textRight("Date: "+vm.Date, right, y+48, 11, false, headerText)
	}

	y = 168
	if opts.headerRule {
		c.line(marginX, y-14, right, y-14, 1.2, opts.accent)
	}

	// ── Comprador ──
	c.text("Bill To:", marginX, y, 13, true, fg)
	y += 24
	buyerName := vm.Buyer.Name
	if buyerName == "" {
		buyerName = "Client Name"
	}
	c.text(buyerName, marginX, y, 12, true, fg)
	y += 19
	for _, s := range []string{vm.Buyer.Email, vm.Buyer.Phone, vm.Buyer.Address} {
		if s == "" {
			continue
		}
		c.text(s, marginX, y, 10, false, sec)
		y += 15
	}
	y += 24

	// ── Tabla de líneas ──
	const (
		qtyX   = 470.0
		unitX  = 618.0
		totalX = pageWidth - marginX
	)
	headCol := fg
	if opts.tableHeaderFill {
		c.rect(marginX-8, y-8, pageWidth-2*(marginX-8), 30, opts.accent)
		headCol = th.Background
	}
	c.text("Description", marginX, y, 11, true, headCol)
	c.textCenter("Qty", qtyX, y, 11, true, headCol)
	c.textRight("Unit Price", unitX, y, 11, true, headCol)
	c.textRight("Total", totalX, y, 11, true, headCol)
	y += 26
	if !opts.tableHeaderFill {
		c.line(marginX, y-8, right, y-8, 1, sec)
	}

	if len(vm.Items) == 0 {
		c.textCenter("No items added yet", pageWidth/2, y+8, 11, false, sec)
		y += rowHeight
	}
	for _, item := range vm.Items {
		c.text(item.ProductName, marginX, y, 11, false, fg)
		if item.Description != "" {
			c.text(item.Description, marginX, y+14, 8.5, false, sec)
		}
		c.textCenter(strconv.Itoa(item.Quantity), qtyX, y, 11, false, fg)
		c.textRight(vm.Money(item.UnitPrice), unitX, y, 11, false, fg)
		c.textRight(vm.Money(item.Total), totalX, y, 11, true, fg)
		y += rowHeight
		c.line(marginX, y-10, right, y-10, 0.5, sec)
	}
	y += 18

	// ── Totales ──
	labelX := 560.0
	for _, row := range vm.TotalRows() {
		if row.Grand {
			c.line(labelX-60, y-6, totalX, y-6, 1.2, opts.accent)
			y += 6
			c.textRight(row.Label, totalX-130, y, 13, true, fg)
			c.textRight(row.Value, totalX, y, 13, true, opts.accent)
			y += totalsRowH + 4
			continue
		}
		c.textRight(row.Label, totalX-130, y, 11, false, sec)
		c.textRight(row.Value, totalX, y, 11, false, fg)
		y += totalsRowH
	}

	// ── Pie ──
	c.textCenter("Thank you for your business!", pageWidth/2, y+36, 10, false, sec)
	return nil
}
