package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Geometría base de la página en píxeles lógicos (A4 vertical a ~96 DPI).
// El factor de escala del exportador multiplica todo al rasterizar.
const (
	pageWidth  = 794.0
	minHeight  = 1123.0
	marginX    = 56.0
	rowHeight  = 34.0
	totalsRowH = 26.0
)

// canvas envuelve gg.Context con primitivas en coordenadas lógicas:
// cada variante dibuja en unidades de página y el canvas aplica la escala
// (posiciones y tamaños de fuente) de forma uniforme.
type canvas struct {
	dc      *gg.Context
	scale   float64
	regular *opentype.Font
	bold    *opentype.Font
	faces   map[faceKey]font.Face
}

type faceKey struct {
	size float64
	bold bool
}

func newCanvas(dc *gg.Context, scale float64) (*canvas, error) {
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsear fuente regular: %w", err)
	}
	bld, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsear fuente bold: %w", err)
	}
	return &canvas{
		dc:      dc,
		scale:   scale,
		regular: reg,
		bold:    bld,
		faces:   make(map[faceKey]font.Face),
	}, nil
}

func (c *canvas) face(size float64, bold bool) (font.Face, error) {
	key := faceKey{size: size, bold: bold}
	if f, ok := c.faces[key]; ok {
		return f, nil
	}
	src := c.regular
	if bold {
		src = c.bold
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size * c.scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("crear face %gpx: %w", size, err)
	}
	c.faces[key] = f
	return f, nil
}

func (c *canvas) setFont(size float64, bold bool) {
	f, err := c.face(size, bold)
	if err != nil {
		return
	}
	c.dc.SetFontFace(f)
}

// text dibuja s con ancla en la esquina superior izquierda lógica (x, y).
func (c *canvas) text(s string, x, y, size float64, bold bool, col color.Color) {
	c.setFont(size, bold)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x*c.scale, (y+size/2)*c.scale, 0, 0.35)
}

// textRight igual que text pero con x como borde derecho.
func (c *canvas) textRight(s string, x, y, size float64, bold bool, col color.Color) {
	c.setFont(size, bold)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x*c.scale, (y+size/2)*c.scale, 1, 0.35)
}

// textCenter igual que text pero centrado horizontalmente en x.
func (c *canvas) textCenter(s string, x, y, size float64, bold bool, col color.Color) {
	c.setFont(size, bold)
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x*c.scale, (y+size/2)*c.scale, 0.5, 0.35)
}

// line dibuja una línea horizontal o diagonal de grosor lógico w.
func (c *canvas) line(x1, y1, x2, y2, w float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(w * c.scale)
	c.dc.DrawLine(x1*c.scale, y1*c.scale, x2*c.scale, y2*c.scale)
	c.dc.Stroke()
}

// rect dibuja un rectángulo relleno.
func (c *canvas) rect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x*c.scale, y*c.scale, w*c.scale, h*c.scale)
	c.dc.Fill()
}

// pageHeight estima la altura lógica necesaria para el contenido: la página
// crece con las líneas para que el PDF multipágina tenga algo que paginar,
// nunca por debajo del alto A4.
func pageHeight(vm ViewModel) float64 {
	const fixed = 620.0 // header + bill-to + cabecera de tabla + bloque de totales + footer
	h := fixed + float64(len(vm.Items))*rowHeight + float64(len(vm.TotalRows()))*totalsRowH
	if h < minHeight {
		return minHeight
	}
	return h
}
