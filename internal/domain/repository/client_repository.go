package repository

import "github.com/jvaldiviae/cyberlink-api/internal/domain/entity"

// ClientRepository define el puerto de persistencia para Client.
// GetByDNI es búsqueda exacta: devuelve (nil, nil) si no existe, nunca error por cero filas.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	GetByDNI(dni string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
