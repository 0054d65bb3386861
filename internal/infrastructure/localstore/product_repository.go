package localstore

import (
	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
)

// ProductRepository persiste el catálogo de productos en products.json.
type ProductRepository struct {
	store *Store
}

func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) load() ([]productRecord, error) {
	var recs []productRecord
	if _, err := r.store.read(productsFile, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *ProductRepository) Create(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.ID == product.ID {
			return domain.ErrDuplicate
		}
	}
	recs = append(recs, productFromEntity(product))
	return r.store.write(productsFile, recs)
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec.ID == id {
			return productToEntity(rec), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) GetByBarcode(barcode string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if rec.Barcode != "" && rec.Barcode == barcode {
			return productToEntity(rec), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *ProductRepository) Update(product *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return err
	}
	for i, rec := range recs {
		if rec.ID == product.ID {
			recs[i] = productFromEntity(product)
			return r.store.write(productsFile, recs)
		}
	}
	return domain.ErrProductNotFound
}

func (r *ProductRepository) List() ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return nil, err
	}
	products := make([]*entity.Product, 0, len(recs))
	for _, rec := range recs {
		products = append(products, productToEntity(rec))
	}
	return products, nil
}

func (r *ProductRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return err
	}
	for i, rec := range recs {
		if rec.ID == id {
			recs = append(recs[:i], recs[i+1:]...)
			return r.store.write(productsFile, recs)
		}
	}
	return domain.ErrProductNotFound
}

func productToEntity(r productRecord) *entity.Product {
	return &entity.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
		Barcode:     r.Barcode,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func productFromEntity(p *entity.Product) productRecord {
	return productRecord{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Barcode:     p.Barcode,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
