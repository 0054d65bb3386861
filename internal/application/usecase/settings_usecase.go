package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/application/dto"
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
	"github.com/jhoicas/facturador/pkg/currency"
)

// SettingsUseCase configuración de facturación: moneda, impuestos por
// defecto, envío y plantilla preferida.
type SettingsUseCase struct {
	repo            repository.SettingsRepository
	defaultCurrency string
	defaultTemplate string
}

// NewSettingsUseCase construye el caso de uso con los defaults de la
// instalación (vienen de la configuración de arranque).
func NewSettingsUseCase(repo repository.SettingsRepository, defaultCurrency, defaultTemplate string) *SettingsUseCase {
	return &SettingsUseCase{
		repo:            repo,
		defaultCurrency: defaultCurrency,
		defaultTemplate: defaultTemplate,
	}
}

// Get devuelve la configuración vigente; si nunca se ha guardado nada,
// sintetiza los defaults de la moneda de la instalación sin persistirlos.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.Current()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Current devuelve la entidad de configuración vigente (guardada o default).
// La usan también los casos de uso de facturación para copiar moneda e
// impuestos dentro de cada factura nueva.
func (uc *SettingsUseCase) Current() (*entity.Settings, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = uc.defaults(uc.defaultCurrency)
	}
	return settings, nil
}

// Update aplica cambios parciales. Al cambiar de moneda sin tocar los
// campos de impuesto, la nueva moneda trae sus propios defaults (GST 18%
// para INR, Tax 10% para el resto).
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.Current()
	if err != nil {
		return nil, err
	}

	if in.CurrencyCode != nil && *in.CurrencyCode != settings.CurrencyCode {
		settings.CurrencyCode = *in.CurrencyCode
		if in.TaxMode == nil && in.TaxRate == nil && in.TaxLabel == nil {
			defaults := currency.DefaultTaxFor(*in.CurrencyCode)
			settings.Tax = entity.TaxPolicy{
				Mode:  defaults.TaxMode,
				Rate:  defaults.TaxRate,
				Label: defaults.TaxName,
			}
			if in.EnableShipping == nil {
				settings.EnableShipping = defaults.EnableShipping
			}
		}
	}
	if in.TaxMode != nil {
		switch *in.TaxMode {
		case entity.TaxModeNone, entity.TaxModeExcluded, entity.TaxModeIncluded:
			settings.Tax.Mode = *in.TaxMode
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.TaxRate != nil {
		if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, domain.ErrInvalidInput
		}
		settings.Tax.Rate = *in.TaxRate
	}
	if in.TaxLabel != nil {
		settings.Tax.Label = *in.TaxLabel
	}
	if in.EnableShipping != nil {
		settings.EnableShipping = *in.EnableShipping
	}
	if in.DefaultTemplate != nil {
		settings.DefaultTemplate = *in.DefaultTemplate
	}
	settings.UpdatedAt = time.Now()

	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func (uc *SettingsUseCase) defaults(code string) *entity.Settings {
	d := currency.DefaultTaxFor(code)
	return &entity.Settings{
		CurrencyCode:    code,
		Tax:             entity.TaxPolicy{Mode: d.TaxMode, Rate: d.TaxRate, Label: d.TaxName},
		EnableShipping:  d.EnableShipping,
		DefaultTemplate: uc.defaultTemplate,
	}
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CurrencyCode:    s.CurrencyCode,
		CurrencySymbol:  currency.Symbol(s.CurrencyCode),
		TaxMode:         s.Tax.Mode,
		TaxRate:         s.Tax.Rate,
		TaxLabel:        s.Tax.Label,
		EnableShipping:  s.EnableShipping,
		DefaultTemplate: s.DefaultTemplate,
	}
}
