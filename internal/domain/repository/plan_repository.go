package repository

import "github.com/jvaldiviae/cyberlink-api/internal/domain/entity"

// PlanRepository define el puerto de persistencia para Plan.
type PlanRepository interface {
	Create(plan *entity.Plan) error
	GetByID(id string) (*entity.Plan, error)
	List() ([]*entity.Plan, error)
	ListByActive(active bool) ([]*entity.Plan, error)
	Update(plan *entity.Plan) error
	Delete(id string) error
}
