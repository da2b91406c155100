package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

// PlanUseCase casos de uso de planes de servicio.
type PlanUseCase struct {
	repo repository.PlanRepository
}

// NewPlanUseCase construye el caso de uso.
func NewPlanUseCase(repo repository.PlanRepository) *PlanUseCase {
	return &PlanUseCase{repo: repo}
}

// Create crea un plan. Sin flag explícito, el plan nace activo.
func (uc *PlanUseCase) Create(in dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if in.Name == "" || in.Speed == "" || in.MonthlyPrice.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.MonthlyPrice.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if !validPlanTipo(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	now := time.Now()
	plan := &entity.Plan{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Speed:        in.Speed,
		MonthlyPrice: in.MonthlyPrice,
		Tipo:         in.Tipo,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// GetByID obtiene un plan.
func (uc *PlanUseCase) GetByID(id string) (*dto.PlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	return toPlanResponse(plan), nil
}

// List lista todos los planes, más recientes primero.
func (uc *PlanUseCase) List() ([]*dto.PlanResponse, error) {
	plans, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPlanResponses(plans), nil
}

// ListActive lista solo planes activos (lo que ve el portal público).
func (uc *PlanUseCase) ListActive() ([]*dto.PlanResponse, error) {
	return uc.ListByActive(true)
}

// ListByActive filtra los planes por la bandera activo.
func (uc *PlanUseCase) ListByActive(active bool) ([]*dto.PlanResponse, error) {
	plans, err := uc.repo.ListByActive(active)
	if err != nil {
		return nil, err
	}
	return toPlanResponses(plans), nil
}

// Update actualiza un plan.
func (uc *PlanUseCase) Update(id string, in dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if in.Name == "" || in.Speed == "" || in.MonthlyPrice.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.MonthlyPrice.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if !validPlanTipo(in.Tipo) {
		return nil, domain.ErrInvalidInput
	}
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}
	plan.Name = in.Name
	plan.Speed = in.Speed
	plan.MonthlyPrice = in.MonthlyPrice
	plan.Tipo = in.Tipo
	if in.Active != nil {
		plan.Active = *in.Active
	}
	plan.UpdatedAt = time.Now()
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// Delete elimina un plan; con contratos asociados la DB lo rechaza (restrict).
func (uc *PlanUseCase) Delete(id string) error {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if plan == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validPlanTipo(t string) bool {
	return t == entity.PlanTipoResidencial || t == entity.PlanTipoEmpresarial
}

func toPlanResponse(p *entity.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:           p.ID,
		Name:         p.Name,
		Speed:        p.Speed,
		MonthlyPrice: p.MonthlyPrice,
		Tipo:         p.Tipo,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func toPlanResponses(plans []*entity.Plan) []*dto.PlanResponse {
	out := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, toPlanResponse(p))
	}
	return out
}
