package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	domainbilling "github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// ClientUseCase casos de uso de clientes. Toda lectura decora la respuesta con
// la deuda derivada (facturas no pagadas) y su estado DEUDOR/AL_DIA.
type ClientUseCase struct {
	repo        repository.ClientRepository
	billingRepo repository.BillingRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(repo repository.ClientRepository, billingRepo repository.BillingRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, billingRepo: billingRepo}
}

// Create registra un cliente desde el panel. Sin estado explícito queda ACTIVO.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.DNI == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ClientStatusActivo
	}
	if !validClientStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		DNI:       in.DNI,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	// Recién creado: deuda cero por definición, sin volver a la DB.
	return toClientResponse(client, decimal.Zero), nil
}

// CreateProspect registra una solicitud del portal público. El estado es
// siempre PROSPECTO, ignore lo que ignore el formulario.
func (uc *ClientUseCase) CreateProspect(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	in.Status = entity.ClientStatusProspecto
	return uc.Create(ctx, in)
}

// GetByID obtiene un cliente con su deuda derivada.
func (uc *ClientUseCase) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
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
	return toClientResponse(client, debt), nil
}

// GetByDNI búsqueda exacta por documento (panel y portal público).
func (uc *ClientUseCase) GetByDNI(ctx context.Context, dni string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByDNI(dni)
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
	return toClientResponse(client, debt), nil
}

// List lista todos los clientes, más recientes primero, con deuda por cliente
// resuelta en una sola consulta agregada.
func (uc *ClientUseCase) List(ctx context.Context) ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	debts, err := uc.billingRepo.DebtByClient(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		debt, ok := debts[c.ID]
		if !ok {
			debt = decimal.Zero
		}
		out = append(out, toClientResponse(c, debt))
	}
	return out, nil
}

// Update actualiza los datos del cliente. Un cambio de estado incluido en el
// PUT pasa por la misma tabla de transiciones que el PATCH dedicado.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if in.DNI == "" || in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != "" && in.Status != client.Status {
		if err := domainbilling.ValidateClientTransition(client.Status, in.Status); err != nil {
			return nil, err
		}
		client.Status = in.Status
	}
	client.DNI = in.DNI
	client.FirstName = in.FirstName
	client.LastName = in.LastName
	client.Phone = in.Phone
	client.Email = in.Email
	client.Address = in.Address
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	debt, err := uc.billingRepo.Debt(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, debt), nil
}

// ChangeStatus cambia solo el estado del ciclo de vida (PATCH /estado).
func (uc *ClientUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.ClientResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if err := domainbilling.ValidateClientTransition(client.Status, status); err != nil {
		return nil, err
	}
	client.Status = status
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	debt, err := uc.billingRepo.Debt(ctx, client.ID)
	if err != nil {
		return nil, err
	}
	return toClientResponse(client, debt), nil
}

// Delete elimina un cliente. Con contratos, facturas o pagos asociados la DB
// lo rechaza (política restrict) y se devuelve ErrHasReferences.
func (uc *ClientUseCase) Delete(id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validClientStatus(s string) bool {
	switch s {
	case entity.ClientStatusProspecto, entity.ClientStatusActivo,
		entity.ClientStatusSuspendido, entity.ClientStatusBaja:
		return true
	}
	return false
}

func toClientResponse(c *entity.Client, debt decimal.Decimal) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                c.ID,
		DNI:               c.DNI,
		FirstName:         c.FirstName,
		LastName:          c.LastName,
		Phone:             c.Phone,
		Email:             c.Email,
		Address:           c.Address,
		Status:            c.Status,
		Debt:              debt,
		EstadoFacturacion: domainbilling.DeriveStatus(debt),
		CreatedAt:         c.CreatedAt.Format(time.RFC3339),
	}
}
