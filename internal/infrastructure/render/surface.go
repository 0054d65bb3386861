package render

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/jhoicas/facturador/internal/domain"
)

// Surface una factura lista para rasterizar: view-model + plantilla +
// style string mutable. El exportador sobrescribe el estilo con colores
// print-safe antes de rasterizar y lo restaura al terminar; el estilo se
// interpreta en cada Rasterize, así el override surte efecto.
//
// Una superficie no es segura para exportaciones concurrentes: el ciclo
// override/restore del estilo no es reentrante.
type Surface struct {
	tmpl  Template
	vm    ViewModel
	style string
}

// NewSurface construye la superficie con el estilo en pantalla por defecto.
func NewSurface(tmpl Template, vm ViewModel) *Surface {
	return &Surface{tmpl: tmpl, vm: vm, style: DefaultStyle}
}

// Style devuelve el style string vigente.
func (s *Surface) Style() string { return s.style }

// SetStyle reemplaza el style string completo (análogo a asignar cssText).
func (s *Surface) SetStyle(style string) { s.style = style }

// Rasterize dibuja el documento a la escala dada y devuelve la imagen.
// La altura crece con el contenido; el ancho es fijo (proporción A4).
func (s *Surface) Rasterize(scale float64) (image.Image, error) {
	if s.tmpl == nil {
		return nil, fmt.Errorf("%w: superficie sin plantilla", domain.ErrExportFailed)
	}
	if scale <= 0 {
		return nil, fmt.Errorf("%w: escala inválida %g", domain.ErrExportFailed, scale)
	}

	th := parseStyle(s.style)
	h := pageHeight(s.vm)

	dc := gg.NewContext(int(pageWidth*scale), int(h*scale))
	dc.SetColor(th.Background)
	dc.Clear()

	c, err := newCanvas(dc, scale)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExportFailed, err)
	}
	if err := s.tmpl.Draw(c, s.vm, th); err != nil {
		return nil, fmt.Errorf("%w: plantilla %s: %v", domain.ErrExportFailed, s.tmpl.ID(), err)
	}
	return dc.Image(), nil
}
