package repository

import "github.com/jhoicas/facturador/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	List() ([]*entity.Product, error)
	Delete(id string) error
}
