package billing

import (
	"context"

	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner. Se usa para que "registrar pago + saldar
// factura" sea atómico: o se persisten ambos efectos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}

// InvoicePDFGenerator genera la representación imprimible de una factura.
// Lo implementa el adaptador maroto en infrastructure/pdf.
type InvoicePDFGenerator interface {
	Render(invoice *entity.Invoice, client *entity.Client, plan *entity.Plan) ([]byte, error)
}
