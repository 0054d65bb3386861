package repository

import "github.com/jhoicas/facturador/internal/domain/entity"

// CompanyRepository puerto de persistencia del perfil de empresa (único por instalación).
// Get devuelve nil sin error cuando el perfil aún no se ha configurado.
type CompanyRepository interface {
	Get() (*entity.Company, error)
	Save(company *entity.Company) error
}

// SettingsRepository puerto de persistencia de la configuración de facturación.
// Get devuelve nil sin error cuando no hay configuración guardada; el caller
// aplica los valores por defecto.
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}
