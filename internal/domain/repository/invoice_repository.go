package repository

import "github.com/jvaldiviae/cyberlink-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
// Orden de listados: fecha de emisión descendente y, a igual fecha, ID descendente.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
	ListByClient(clientID string) ([]*entity.Invoice, error)
	ListByContract(contractID string) ([]*entity.Invoice, error)
	Update(invoice *entity.Invoice) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
