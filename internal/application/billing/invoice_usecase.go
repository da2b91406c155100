package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	domainbilling "github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas.
type InvoiceUseCase struct {
	repo         repository.InvoiceRepository
	contractRepo repository.ContractRepository
	clientRepo   repository.ClientRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, contractRepo repository.ContractRepository, clientRepo repository.ClientRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, contractRepo: contractRepo, clientRepo: clientRepo}
}

// Create emite una factura contra un contrato. El monto debe ser positivo;
// el estado inicial por defecto es PENDIENTE.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ContractID == "" || in.ClientID == "" ||
		in.PeriodFrom == "" || in.PeriodTo == "" || in.IssueDate == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	periodFrom, err := dto.ParseDate(in.PeriodFrom)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	periodTo, err := dto.ParseDate(in.PeriodTo)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	issueDate, err := dto.ParseDate(in.IssueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := dto.ParseDate(in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.InvoiceStatusPendiente
	}
	if !validInvoiceStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	contract, err := uc.contractRepo.GetByID(in.ContractID)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if contract.ClientID != in.ClientID {
		// La denormalización cliente/contrato debe ser coherente.
		return nil, domain.ErrConflict
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		ContractID: in.ContractID,
		ClientID:   in.ClientID,
		PeriodFrom: periodFrom,
		PeriodTo:   periodTo,
		IssueDate:  issueDate,
		DueDate:    dueDate,
		Amount:     in.Amount,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	invoice.ClientDNI = contract.ClientDNI
	invoice.ClientName = contract.ClientName
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura con datos básicos del cliente.
func (uc *InvoiceUseCase) GetByID(id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(invoice), nil
}

// List lista todas las facturas (emisión DESC, id DESC).
func (uc *InvoiceUseCase) List() ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// ListByClient lista las facturas de un cliente.
func (uc *InvoiceUseCase) ListByClient(clientID string) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// ListByContract lista las facturas de un contrato.
func (uc *InvoiceUseCase) ListByContract(contractID string) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.repo.ListByContract(contractID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(invoices), nil
}

// Update actualiza una factura completa salvo el estado (solo vía ChangeStatus).
func (uc *InvoiceUseCase) Update(id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.ContractID == "" || in.ClientID == "" ||
		in.PeriodFrom == "" || in.PeriodTo == "" || in.IssueDate == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	periodFrom, err := dto.ParseDate(in.PeriodFrom)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	periodTo, err := dto.ParseDate(in.PeriodTo)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	issueDate, err := dto.ParseDate(in.IssueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	dueDate, err := dto.ParseDate(in.DueDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	invoice.ContractID = in.ContractID
	invoice.ClientID = in.ClientID
	invoice.PeriodFrom = periodFrom
	invoice.PeriodTo = periodTo
	invoice.IssueDate = issueDate
	invoice.DueDate = dueDate
	invoice.Amount = in.Amount
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(invoice); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// ChangeStatus cambia solo el estado (PATCH /estado) validando la transición.
// Marcar PAGADA una factura ya PAGADA es un no-op que responde éxito.
// VENCIDA jamás se marca sola: siempre es una acción explícita del operador.
func (uc *InvoiceUseCase) ChangeStatus(id, status string) (*dto.InvoiceResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	if err := domainbilling.ValidateInvoiceTransition(invoice.Status, status); err != nil {
		return nil, err
	}
	if invoice.Status != status {
		if err := uc.repo.UpdateStatus(id, status); err != nil {
			return nil, err
		}
		invoice.Status = status
	}
	return toInvoiceResponse(invoice), nil
}

// Delete elimina una factura; con pagos asociados la DB lo rechaza (restrict).
func (uc *InvoiceUseCase) Delete(id string) error {
	invoice, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validInvoiceStatus(s string) bool {
	switch s {
	case entity.InvoiceStatusPendiente, entity.InvoiceStatusPagada, entity.InvoiceStatusVencida:
		return true
	}
	return false
}

func toInvoiceResponse(i *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:         i.ID,
		ContractID: i.ContractID,
		ClientID:   i.ClientID,
		ClientDNI:  i.ClientDNI,
		ClientName: i.ClientName,
		PeriodFrom: dto.FormatDate(i.PeriodFrom),
		PeriodTo:   dto.FormatDate(i.PeriodTo),
		IssueDate:  dto.FormatDate(i.IssueDate),
		DueDate:    dto.FormatDate(i.DueDate),
		Amount:     i.Amount,
		Status:     i.Status,
		CreatedAt:  i.CreatedAt.Format(time.RFC3339),
	}
}

func toInvoiceResponses(invoices []*entity.Invoice) []*dto.InvoiceResponse {
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		out = append(out, toInvoiceResponse(i))
	}
	return out
}
