package entity

import "time"

// Company perfil de la empresa emisora. Hay un único perfil por instalación;
// cada factura guarda una copia inmutable de estos datos al momento de crearse.
type Company struct {
	Name      string
	Tagline   string
	Address   string
	TaxInfo   string // NIT / VAT / Tax ID, texto libre
	LogoPath  string // ruta local del logo (opcional)
	CreatedAt time.Time
	UpdatedAt time.Time
}
