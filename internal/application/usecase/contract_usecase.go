package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	domainbilling "github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// ContractUseCase casos de uso de contratos.
type ContractUseCase struct {
	repo       repository.ContractRepository
	clientRepo repository.ClientRepository
	planRepo   repository.PlanRepository
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(repo repository.ContractRepository, clientRepo repository.ClientRepository, planRepo repository.PlanRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo, clientRepo: clientRepo, planRepo: planRepo}
}

// Create crea un contrato. Cliente y plan deben existir; el estado inicial por
// defecto es PENDIENTE y el ciclo MENSUAL.
func (uc *ContractUseCase) Create(in dto.CreateContractRequest) (*dto.ContractResponse, error) {
	if in.ClientID == "" || in.PlanID == "" || in.StartDate == "" {
		return nil, domain.ErrInvalidInput
	}
	startDate, err := dto.ParseDate(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var endDate *time.Time
	if in.EndDate != "" {
		d, err := dto.ParseDate(in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		endDate = &d
	}
	status := in.Status
	if status == "" {
		status = entity.ContractStatusPendiente
	}
	if !validContractStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	cycle := in.BillingCycle
	if cycle == "" {
		cycle = entity.CicloMensual
	}
	if !validBillingCycle(cycle) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	plan, err := uc.planRepo.GetByID(in.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	contract := &entity.Contract{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		PlanID:        in.PlanID,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        status,
		BillingCycle:  cycle,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(contract); err != nil {
		return nil, err
	}
	// Poblar los campos de JOIN para la respuesta sin otra consulta.
	contract.ClientDNI = client.DNI
	contract.ClientName = client.FullName()
	contract.PlanName = plan.Name
	contract.PlanSpeed = plan.Speed
	contract.PlanPrice = plan.MonthlyPrice
	return toContractResponse(contract), nil
}

// GetByID obtiene un contrato con datos de cliente y plan.
func (uc *ContractUseCase) GetByID(id string) (*dto.ContractResponse, error) {
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	return toContractResponse(contract), nil
}

// List lista todos los contratos, más recientes primero.
func (uc *ContractUseCase) List() ([]*dto.ContractResponse, error) {
	contracts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toContractResponses(contracts), nil
}

// ListByClient lista los contratos de un cliente.
func (uc *ContractUseCase) ListByClient(clientID string) ([]*dto.ContractResponse, error) {
	contracts, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return toContractResponses(contracts), nil
}

// Update actualiza los datos del contrato salvo el estado, que cambia solo
// vía ChangeStatus para pasar por la tabla de transiciones.
func (uc *ContractUseCase) Update(id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	if in.ClientID == "" || in.PlanID == "" || in.StartDate == "" {
		return nil, domain.ErrInvalidInput
	}
	startDate, err := dto.ParseDate(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	var endDate *time.Time
	if in.EndDate != "" {
		d, err := dto.ParseDate(in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		endDate = &d
	}
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	cycle := in.BillingCycle
	if cycle == "" {
		cycle = contract.BillingCycle
	}
	if !validBillingCycle(cycle) {
		return nil, domain.ErrInvalidInput
	}
	contract.ClientID = in.ClientID
	contract.PlanID = in.PlanID
	contract.StartDate = startDate
	contract.EndDate = endDate
	contract.BillingCycle = cycle
	contract.PaymentMethod = in.PaymentMethod
	contract.UpdatedAt = time.Now()
	if err := uc.repo.Update(contract); err != nil {
		return nil, err
	}
	return uc.GetByID(id)
}

// ChangeStatus cambia el estado del contrato validando la transición.
// El sistema nunca expira contratos solo: todo cambio es una acción explícita.
func (uc *ContractUseCase) ChangeStatus(id, status string) (*dto.ContractResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if contract == nil {
		return nil, domain.ErrNotFound
	}
	if err := domainbilling.ValidateContractTransition(contract.Status, status); err != nil {
		return nil, err
	}
	contract.Status = status
	contract.UpdatedAt = time.Now()
	if err := uc.repo.Update(contract); err != nil {
		return nil, err
	}
	return toContractResponse(contract), nil
}

// Delete elimina un contrato; con facturas asociadas la DB lo rechaza (restrict).
func (uc *ContractUseCase) Delete(id string) error {
	contract, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if contract == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validContractStatus(s string) bool {
	switch s {
	case entity.ContractStatusPendiente, entity.ContractStatusActivo,
		entity.ContractStatusSuspendido, entity.ContractStatusCancelado:
		return true
	}
	return false
}

func validBillingCycle(c string) bool {
	switch c {
	case entity.CicloMensual, entity.CicloTrimestral, entity.CicloAnual:
		return true
	}
	return false
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	resp := &dto.ContractResponse{
		ID:            c.ID,
		ClientID:      c.ClientID,
		ClientDNI:     c.ClientDNI,
		ClientName:    c.ClientName,
		PlanID:        c.PlanID,
		PlanName:      c.PlanName,
		PlanSpeed:     c.PlanSpeed,
		PlanPrice:     c.PlanPrice,
		StartDate:     dto.FormatDate(c.StartDate),
		Status:        c.Status,
		BillingCycle:  c.BillingCycle,
		PaymentMethod: c.PaymentMethod,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
	if c.EndDate != nil {
		resp.EndDate = dto.FormatDate(*c.EndDate)
	}
	return resp
}

func toContractResponses(contracts []*entity.Contract) []*dto.ContractResponse {
	out := make([]*dto.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		out = append(out, toContractResponse(c))
	}
	return out
}
