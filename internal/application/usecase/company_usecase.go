package usecase

import (
	"strings"
	"time"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
)

// CompanyUseCase perfil de empresa de la instalación (único).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devuelve el perfil configurado, o ErrNotFound si aún no existe.
func (uc *CompanyUseCase) Get() (*dto.CompanyResponse, error) {
	company, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Save crea o reemplaza el perfil de empresa. CreatedAt se conserva si
// ya existía un perfil.
func (uc *CompanyUseCase) Save(in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrValidation
	}

	now := time.Now()
	company := &entity.Company{
		Name:      strings.TrimSpace(in.Name),
		Tagline:   in.Tagline,
		Address:   in.Address,
		TaxInfo:   in.TaxInfo,
		LogoPath:  in.LogoPath,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if existing, err := uc.repo.Get(); err != nil {
		return nil, err
	} else if existing != nil {
		company.CreatedAt = existing.CreatedAt
	}

	if err := uc.repo.Save(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		Name:      c.Name,
		Tagline:   c.Tagline,
		Address:   c.Address,
		TaxInfo:   c.TaxInfo,
		LogoPath:  c.LogoPath,
		UpdatedAt: c.UpdatedAt,
	}
}
