package billing

import (
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// PDFUseCase genera la versión imprimible de una factura para entregar al
// abonado (GET /api/facturas/:id/pdf).
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	clientRepo   repository.ClientRepository
	contractRepo repository.ContractRepository
	planRepo     repository.PlanRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	clientRepo repository.ClientRepository,
	contractRepo repository.ContractRepository,
	planRepo repository.PlanRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		contractRepo: contractRepo,
		planRepo:     planRepo,
		generator:    generator,
	}
}

// Render arma el PDF de una factura con los datos del cliente y del plan contratado.
func (uc *PDFUseCase) Render(invoiceID string) ([]byte, error) {
	invoice, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(invoice.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	// El plan puede faltar si el contrato fue borrado; el PDF sale igual.
	var plan *entity.Plan
	if contract, err := uc.contractRepo.GetByID(invoice.ContractID); err == nil && contract != nil {
		plan, _ = uc.planRepo.GetByID(contract.PlanID)
	}
	return uc.generator.Render(invoice, client, plan)
}
