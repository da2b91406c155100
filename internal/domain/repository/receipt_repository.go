package repository

import "github.com/jvaldiviae/cyberlink-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para Receipt
// (solo metadatos; el archivo físico lo maneja el FileStore).
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	List() ([]*entity.Receipt, error)
	Delete(id string) error
}
