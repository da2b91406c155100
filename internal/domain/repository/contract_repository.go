package repository

import "github.com/jvaldiviae/cyberlink-api/internal/domain/entity"

// ContractRepository define el puerto de persistencia para Contract.
// Los listados devuelven los campos de JOIN (cliente y plan) poblados.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	List() ([]*entity.Contract, error)
	ListByClient(clientID string) ([]*entity.Contract, error)
	Update(contract *entity.Contract) error
	Delete(id string) error
}
