package repository

import "github.com/jhoicas/facturador/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice (DIP).
// List devuelve las facturas de más reciente a más antigua.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	Delete(id string) error
	Count() (int, error)
	NextNumber() (string, error)
}
