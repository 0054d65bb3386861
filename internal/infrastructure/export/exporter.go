// Package export serializa una superficie renderizada a PDF, PNG o JPG.
//
// La rasterización corre con un override temporal de estilo print-safe
// (fondo blanco, texto negro) que se restaura siempre, incluso si la
// rasterización falla. El PDF pagina repitiendo la imagen completa por
// página con offsets verticales negativos crecientes y dejando que la
// página la recorte.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/jhoicas/facturador/internal/domain"
)

// Surface superficie rasterizable con estilo mutable. La implementación
// real vive en el paquete render; los tests usan stubs.
type Surface interface {
	Style() string
	SetStyle(style string)
	Rasterize(scale float64) (image.Image, error)
}

// Format formato de artefacto de salida.
type Format string

// Formatos soportados.
const (
	FormatPNG Format = "png"
	FormatJPG Format = "jpg"
	FormatPDF Format = "pdf"
)

// Geometría A4 vertical en milímetros (la altura útil coincide con la que
// usa el visor original, 295mm, no los 297mm nominales).
const (
	pdfPageWidth  = 210.0
	pdfPageHeight = 295.0
)

// Override print-safe aplicado durante la rasterización, sin importar el
// tema en pantalla de la superficie.
const printSafeStyle = "background:#ffffff;color:#000000"

// Config opciones del exportador.
type Config struct {
	Scale       float64 // sobremuestreo del raster; < 2 se eleva a 2 (calidad de impresión)
	JPEGQuality int     // 1-100; 0 usa 90
}

// Exporter serializa superficies a artefactos descargables.
// No es seguro lanzar dos exportaciones concurrentes sobre la misma
// superficie: el ciclo override/restore de estilo no es reentrante.
type Exporter struct {
	scale   float64
	quality int
}

// New construye el exportador aplicando mínimos de calidad.
func New(cfg Config) *Exporter {
	scale := cfg.Scale
	if scale == 0 {
		scale = 3
	}
	if scale < 2 {
		scale = 2
	}
	quality := cfg.JPEGQuality
	if quality <= 0 || quality > 100 {
		quality = 90
	}
	return &Exporter{scale: scale, quality: quality}
}

// rasterize aplica el override print-safe, rasteriza y restaura el estilo
// original en todos los caminos de salida.
func (e *Exporter) rasterize(surface Surface) (img image.Image, err error) {
	original := surface.Style()
	surface.SetStyle(printSafeStyle)
	defer surface.SetStyle(original)

	return surface.Rasterize(e.scale)
}

// ExportRaster rasteriza la superficie y la codifica como PNG o JPG.
// Devuelve los bytes y el nombre de archivo `<basename>.<ext>`.
func (e *Exporter) ExportRaster(surface Surface, format Format, basename string) ([]byte, string, error) {
	if format != FormatPNG && format != FormatJPG {
		return nil, "", fmt.Errorf("%w: formato raster no soportado %q", domain.ErrExportFailed, format)
	}

	img, err := e.rasterize(surface)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", domain.ErrExportFailed, format, err)
	}

	var buf bytes.Buffer
	switch format {
	case FormatPNG:
		err = png.Encode(&buf, img)
	case FormatJPG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.quality})
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: codificar %s: %v", domain.ErrExportFailed, format, err)
	}
	return buf.Bytes(), Filename(basename, format), nil
}

// ExportPDF rasteriza una sola vez y pagina el raster en A4 vertical.
//
// Contrato de paginación (idéntico al visor original): la primera página se
// dibuja en posición 0 y se descuenta una página; mientras quede altura
// (heightLeft >= 0) se agrega una página y se dibuja la imagen COMPLETA en
// position = heightLeft - imgHeight, dejando que la página recorte el resto.
// Una imagen de exactamente N×295mm produce N+1 páginas.
func (e *Exporter) ExportPDF(surface Surface, basename string) ([]byte, string, error) {
	img, err := e.rasterize(surface)
	if err != nil {
		return nil, "", fmt.Errorf("%w: pdf: %v", domain.ErrExportFailed, err)
	}

	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, "", fmt.Errorf("%w: pdf: codificar raster: %v", domain.ErrExportFailed, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 {
		return nil, "", fmt.Errorf("%w: pdf: raster vacío", domain.ErrExportFailed)
	}
	imgHeight := float64(bounds.Dy()) * pdfPageWidth / float64(bounds.Dx())

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	// AllowNegativePosition: los offsets de tiling son negativos a partir
	// de la segunda página; sin esto gofpdf los trataría como auto-posición.
	opts := gofpdf.ImageOptions{ImageType: "PNG", AllowNegativePosition: true}
	pdf.RegisterImageOptionsReader("invoice", opts, &pngBuf)

	for _, position := range PagePositions(imgHeight) {
		pdf.AddPage()
		pdf.ImageOptions("invoice", 0, position, pdfPageWidth, imgHeight, false, opts, 0, "")
	}
	if pdf.Err() {
		return nil, "", fmt.Errorf("%w: pdf: %v", domain.ErrExportFailed, pdf.Error())
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, "", fmt.Errorf("%w: pdf: %v", domain.ErrExportFailed, err)
	}
	return out.Bytes(), Filename(basename, FormatPDF), nil
}

// PagePositions devuelve el offset vertical (mm) de la imagen en cada
// página, siguiendo el bucle de tiling exacto del contrato.
func PagePositions(imgHeight float64) []float64 {
	positions := []float64{0}
	heightLeft := imgHeight - pdfPageHeight
	for heightLeft >= 0 {
		positions = append(positions, heightLeft-imgHeight)
		heightLeft -= pdfPageHeight
	}
	return positions
}

// Filename arma `<basename>.<ext>` para el formato dado.
func Filename(basename string, format Format) string {
	return basename + "." + string(format)
}
