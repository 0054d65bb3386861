package render

import "image/color"

// Las nueve variantes visuales. Cada una es una piel sobre drawInvoice:
// mismo contrato de datos, distinta presentación.

// ── Classic ───────────────────────────────────────────────────────────────────

type classicTemplate struct{}

func (t *classicTemplate) ID() string   { return "classic" }
func (t *classicTemplate) Name() string { return "Classic" }
func (t *classicTemplate) Description() string {
	return "Traditional professional invoice layout"
}

func (t *classicTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:     color.RGBA{R: 37, G: 99, B: 235, A: 0xff}, // azul clásico
		headerRule: true,
	})
}

// ── Modern ────────────────────────────────────────────────────────────────────

type modernTemplate struct{}

func (t *modernTemplate) ID() string   { return "modern" }
func (t *modernTemplate) Name() string { return "Modern" }
func (t *modernTemplate) Description() string {
	return "Clean gradient header with modern typography"
}

func (t *modernTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:          color.RGBA{R: 124, G: 58, B: 237, A: 0xff}, // violeta
		headerBand:      true,
		tableHeaderFill: true,
	})
}

// ── Minimal ───────────────────────────────────────────────────────────────────

type minimalTemplate struct{}

func (t *minimalTemplate) ID() string   { return "minimal" }
func (t *minimalTemplate) Name() string { return "Minimal" }
func (t *minimalTemplate) Description() string {
	return "Clean and simple design with minimal styling"
}

func (t *minimalTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:         color.RGBA{R: 82, G: 82, B: 82, A: 0xff}, // gris neutro
		centeredHeader: true,
		titleSize:      20,
	})
}

// ── Professional ──────────────────────────────────────────────────────────────

type professionalTemplate struct{}

func (t *professionalTemplate) ID() string   { return "professional" }
func (t *professionalTemplate) Name() string { return "Professional" }
func (t *professionalTemplate) Description() string {
	return "Corporate-ready layout with structured tables"
}

func (t *professionalTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:          color.RGBA{R: 15, G: 118, B: 110, A: 0xff}, // teal sobrio
		headerRule:      true,
		tableHeaderFill: true,
	})
}

// ── Corporate ─────────────────────────────────────────────────────────────────

type corporateTemplate struct{}

func (t *corporateTemplate) ID() string   { return "corporate" }
func (t *corporateTemplate) Name() string { return "Corporate" }
func (t *corporateTemplate) Description() string {
	return "Formal navy styling for established businesses"
}

func (t *corporateTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:          color.RGBA{R: 30, G: 58, B: 138, A: 0xff}, // azul marino
		headerBand:      true,
		tableHeaderFill: true,
		titleSize:       22,
	})
}

// ── Creative ──────────────────────────────────────────────────────────────────

type creativeTemplate struct{}

func (t *creativeTemplate) ID() string   { return "creative" }
func (t *creativeTemplate) Name() string { return "Creative" }
func (t *creativeTemplate) Description() string {
	return "Bold accents for studios and freelancers"
}

func (t *creativeTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:     color.RGBA{R: 219, G: 39, B: 119, A: 0xff}, // rosa intenso
		headerBand: true,
		titleSize:  26,
	})
}

// ── Elegant ───────────────────────────────────────────────────────────────────

type elegantTemplate struct{}

func (t *elegantTemplate) ID() string   { return "elegant" }
func (t *elegantTemplate) Name() string { return "Elegant" }
func (t *elegantTemplate) Description() string {
	return "Refined centered layout with fine rules"
}

func (t *elegantTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:         color.RGBA{R: 146, G: 64, B: 14, A: 0xff}, // ámbar oscuro
		centeredHeader: true,
		headerRule:     true,
		titleSize:      22,
	})
}

// ── Compact ───────────────────────────────────────────────────────────────────

type compactTemplate struct{}

func (t *compactTemplate) ID() string   { return "compact" }
func (t *compactTemplate) Name() string { return "Compact" }
func (t *compactTemplate) Description() string {
	return "Dense layout that fits long item lists"
}

func (t *compactTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:     color.RGBA{R: 71, G: 85, B: 105, A: 0xff}, // pizarra
		headerRule: true,
		titleSize:  18,
	})
}

// ── Tech ──────────────────────────────────────────────────────────────────────

type techTemplate struct{}

func (t *techTemplate) ID() string   { return "tech" }
func (t *techTemplate) Name() string { return "Tech" }
func (t *techTemplate) Description() string {
	return "Sharp styling aimed at software and IT services"
}

func (t *techTemplate) Draw(c *canvas, vm ViewModel, th Theme) error {
	return drawInvoice(c, vm, th, layoutOpts{
		accent:          color.RGBA{R: 5, G: 150, B: 105, A: 0xff}, // verde esmeralda
		headerRule:      true,
		tableHeaderFill: true,
		titleSize:       20,
	})
}
