package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para Payment.
// TotalForInvoice suma los pagos acumulados de una factura (cero si no hay ninguno);
// se usa dentro de la transacción de registro de pago para decidir el saldado.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	List() ([]*entity.Payment, error)
	ListByClient(clientID string) ([]*entity.Payment, error)
	ListByInvoice(invoiceID string) ([]*entity.Payment, error)
	TotalForInvoice(invoiceID string) (decimal.Decimal, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
}
