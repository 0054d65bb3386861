// Package render implementa las plantillas visuales de factura y la
// superficie rasterizable que consume el exportador.
//
// Una plantilla es una variante de presentación del mismo contrato de
// datos (ViewModel): todas muestran los mismos campos y las mismas filas
// condicionales de totales; solo cambia el estilo. La selección se hace
// por id contra el registro Registry.
package render

import "image/color"

// Theme colores efectivos de la página al rasterizar. Background y
// Foreground salen del style string de la superficie (y por tanto del
// override print-safe del exportador); Accent es propio de cada variante.
type Theme struct {
	Background color.Color
	Foreground color.Color
}

// Template una variante visual de factura.
type Template interface {
	ID() string
	Name() string
	Description() string
	// Draw dibuja la factura completa sobre el canvas. El canvas ya viene
	// escalado y con el fondo pintado; la plantilla no debe tocar el estilo
	// de la superficie.
	Draw(c *canvas, vm ViewModel, th Theme) error
}

// Registry catálogo ordenado de plantillas disponibles.
type Registry struct {
	templates []Template
}

// NewRegistry construye el registro con las nueve variantes en el orden
// de presentación.
func NewRegistry() *Registry {
	return &Registry{templates: []Template{
		&classicTemplate{},
		&modernTemplate{},
		&minimalTemplate{},
		&professionalTemplate{},
		&corporateTemplate{},
		&creativeTemplate{},
		&elegantTemplate{},
		&compactTemplate{},
		&techTemplate{},
	}}
}

// All devuelve las plantillas en orden.
func (r *Registry) All() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Find busca una plantilla por id. Devuelve nil si no existe.
func (r *Registry) Find(id string) Template {
	for _, t := range r.templates {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// FindOrDefault busca por id y cae a "classic" si el id no existe
// (registros antiguos pueden traer ids desconocidos).
func (r *Registry) FindOrDefault(id string) Template {
	if t := r.Find(id); t != nil {
		return t
	}
	return r.templates[0]
}
