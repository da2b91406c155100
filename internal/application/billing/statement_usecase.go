package billing

import (
	"context"
	"time"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	domainbilling "github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// StatementUseCase estado de cuenta de un cliente: resumen de totales para el
// panel y la autoconsulta pública por DNI del portal. Solo lecturas.
//
// Conviven dos cifras: la deuda (facturas con estado ≠ PAGADA) y el saldo
// (facturado − pagado). Pueden diferir con pagos parciales. La deuda es la
// cifra autoritativa para el estado DEUDOR/AL_DIA; el saldo es informativo.
type StatementUseCase struct {
	clientRepo  repository.ClientRepository
	billingRepo repository.BillingRepository
	invoiceRepo repository.InvoiceRepository
	paymentRepo repository.PaymentRepository
}

// NewStatementUseCase construye el caso de uso.
func NewStatementUseCase(
	clientRepo repository.ClientRepository,
	billingRepo repository.BillingRepository,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
) *StatementUseCase {
	return &StatementUseCase{
		clientRepo:  clientRepo,
		billingRepo: billingRepo,
		invoiceRepo: invoiceRepo,
		paymentRepo: paymentRepo,
	}
}

// Summary devuelve los totales de dinero de un cliente (GET /clientes/:id/resumen).
func (uc *StatementUseCase) Summary(ctx context.Context, clientID string) (*dto.ClientSummaryResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	totals, err := uc.billingRepo.Totals(ctx, clientID)
	if err != nil {
		return nil, err
	}
	debt, err := uc.billingRepo.Debt(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return &dto.ClientSummaryResponse{
		ClientID:          clientID,
		TotalInvoiced:     totals.Invoiced,
		TotalPaid:         totals.Paid,
		Balance:           totals.Invoiced.Sub(totals.Paid),
		Debt:              debt,
		EstadoFacturacion: domainbilling.DeriveStatus(debt),
	}, nil
}

// PortalByDNI arma la vista pública de autoconsulta: cliente, estado de
// facturación derivado, y sus facturas y pagos.
func (uc *StatementUseCase) PortalByDNI(ctx context.Context, dni string) (*dto.PortalClientResponse, error) {
	client, err := uc.clientRepo.GetByDNI(dni)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	debt, err := uc.billingRepo.Debt(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoiceRepo.ListByClient(client.ID)
	if err != nil {
		return nil, err
	}
	payments, err := uc.paymentRepo.ListByClient(client.ID)
	if err != nil {
		return nil, err
	}
	return &dto.PortalClientResponse{
		Client: dto.ClientResponse{
			ID:                client.ID,
			DNI:               client.DNI,
			FirstName:         client.FirstName,
			LastName:          client.LastName,
			Phone:             client.Phone,
			Email:             client.Email,
			Address:           client.Address,
			Status:            client.Status,
			Debt:              debt,
			EstadoFacturacion: domainbilling.DeriveStatus(debt),
			CreatedAt:         client.CreatedAt.Format(time.RFC3339),
		},
		Invoices: toInvoiceResponses(invoices),
		Payments: toPaymentResponses(payments),
	}, nil
}
