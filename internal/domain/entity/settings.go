package entity

import "time"

// Settings configuración de facturación de la instalación: moneda,
// impuestos por defecto y plantilla preferida. Se copian dentro de cada
// factura nueva; los registros históricos no se ven afectados al cambiarlos.
type Settings struct {
	CurrencyCode    string
	Tax             TaxPolicy
	EnableShipping  bool
	DefaultTemplate string
	UpdatedAt       time.Time
}
