package localstore

import (
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
)

// CompanyRepository persiste el perfil de empresa en company.json.
// Devuelve (nil, nil) cuando todavía no se ha configurado ninguna empresa.
type CompanyRepository struct {
	store *Store
}

func NewCompanyRepository(store *Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

func (r *CompanyRepository) Get() (*entity.Company, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rec companyRecord
	ok, err := r.store.read(companyFile, &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	c := companyToEntity(rec)
	return &c, nil
}

func (r *CompanyRepository) Save(company *entity.Company) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return r.store.write(companyFile, companyFromEntity(*company))
}
