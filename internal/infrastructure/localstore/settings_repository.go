package localstore

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
)

// SettingsRepository persiste la configuración de facturación en
// settings.json. Los campos opcionales ausentes en registros antiguos se
// rellenan al leer: impuesto → modo "none" con tarifa cero, envío →
// deshabilitado, plantilla → "classic", moneda → "USD".
type SettingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

var _ repository.SettingsRepository = (*SettingsRepository)(nil)

func (r *SettingsRepository) Get() (*entity.Settings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rec settingsRecord
	ok, err := r.store.read(settingsFile, &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	s := &entity.Settings{
		CurrencyCode:    rec.Currency,
		DefaultTemplate: rec.DefaultTemplate,
		UpdatedAt:       rec.UpdatedAt,
	}
	if rec.Tax != nil {
		s.Tax = entity.TaxPolicy(*rec.Tax)
	} else {
		s.Tax = entity.TaxPolicy{Mode: entity.TaxModeNone, Rate: decimal.Zero}
	}
	if rec.EnableShipping != nil {
		s.EnableShipping = *rec.EnableShipping
	}
	if s.CurrencyCode == "" {
		s.CurrencyCode = defaultCurrency
	}
	if s.DefaultTemplate == "" {
		s.DefaultTemplate = defaultTemplateID
	}
	return s, nil
}

func (r *SettingsRepository) Save(settings *entity.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tax := taxRecord(settings.Tax)
	shipping := settings.EnableShipping
	rec := settingsRecord{
		Currency:        settings.CurrencyCode,
		Tax:             &tax,
		EnableShipping:  &shipping,
		DefaultTemplate: settings.DefaultTemplate,
		UpdatedAt:       settings.UpdatedAt,
	}
	return r.store.write(settingsFile, rec)
}
