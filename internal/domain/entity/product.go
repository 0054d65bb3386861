package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo local.
// UnitPrice es el precio de lista; las facturas guardan su propia copia
// del precio por línea, así que editar el catálogo no altera facturas históricas.
type Product struct {
	ID          string
	Name        string
	Description string
	UnitPrice   decimal.Decimal
	Barcode     string // EAN/UPC para el escáner (opcional)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
