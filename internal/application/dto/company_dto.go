package dto

import "time"

// UpdateCompanyRequest entrada para configurar el perfil de empresa.
type UpdateCompanyRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Tagline  string `json:"tagline"`
	Address  string `json:"address"`
	TaxInfo  string `json:"tax_info"`
	LogoPath string `json:"logo_path"`
}

// CompanyResponse salida del perfil de empresa.
type CompanyResponse struct {
	Name      string    `json:"name"`
	Tagline   string    `json:"tagline,omitempty"`
	Address   string    `json:"address,omitempty"`
	TaxInfo   string    `json:"tax_info,omitempty"`
	LogoPath  string    `json:"logo_path,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
