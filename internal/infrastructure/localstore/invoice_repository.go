package localstore

import (
	"fmt"

	"github.com/jhoicas/facturador/internal/domain"
	"github.com/jhoicas/facturador/internal/domain/entity"
	"github.com/jhoicas/facturador/internal/domain/repository"
)

// InvoiceRepository persiste el historial de facturas en invoices.json.
// El documento guarda el consecutivo junto con las facturas; las nuevas se
// anteponen, así List devuelve siempre de más reciente a más antigua sin
// ordenar al leer.
type InvoiceRepository struct {
	store *Store
}

func NewInvoiceRepository(store *Store) *InvoiceRepository {
	return &InvoiceRepository{store: store}
}

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) load() (invoicesDocument, error) {
	doc := invoicesDocument{NextNumber: 1}
	ok, err := r.store.read(invoicesFile, &doc)
	if err != nil {
		return doc, err
	}
	if ok && doc.NextNumber < 1 {
		// documento de versiones viejas sin consecutivo: retomar después
		// de las facturas existentes
		doc.NextNumber = len(doc.Invoices) + 1
	}
	return doc, nil
}

func (r *InvoiceRepository) Create(invoice *entity.Invoice) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	doc.Invoices = append([]invoiceRecord{invoiceFromEntity(invoice)}, doc.Invoices...)
	return r.store.write(invoicesFile, doc)
}

func (r *InvoiceRepository) GetByID(id string) (*entity.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, rec := range doc.Invoices {
		if rec.ID == id {
			return invoiceToEntity(rec), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *InvoiceRepository) List() ([]*entity.Invoice, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	invoices := make([]*entity.Invoice, 0, len(doc.Invoices))
	for _, rec := range doc.Invoices {
		invoices = append(invoices, invoiceToEntity(rec))
	}
	return invoices, nil
}

func (r *InvoiceRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}
	for i, rec := range doc.Invoices {
		if rec.ID == id {
			doc.Invoices = append(doc.Invoices[:i], doc.Invoices[i+1:]...)
			return r.store.write(invoicesFile, doc)
		}
	}
	return domain.ErrNotFound
}

func (r *InvoiceRepository) Count() (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(doc.Invoices), nil
}

// NextNumber consume el consecutivo y lo persiste. El formato INV-0001
// es solo un default: el usuario puede sobreescribir el número al crear
// la factura sin afectar la secuencia.
func (r *InvoiceRepository) NextNumber() (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return "", err
	}
	number := fmt.Sprintf("INV-%04d", doc.NextNumber)
	doc.NextNumber++
	if err := r.store.write(invoicesFile, doc); err != nil {
		return "", err
	}
	return number, nil
}
