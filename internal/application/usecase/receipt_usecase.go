package usecase

import (
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
	"github.com/jvaldiviae/cyberlink-api/pkg/logger"
)

// ReceiptUseCase casos de uso de comprobantes de pago subidos.
type ReceiptUseCase struct {
	repo  repository.ReceiptRepository
	store FileStore
	log   *logger.Logger
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(repo repository.ReceiptRepository, store FileStore, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, store: store, log: log}
}

// Upload guarda el archivo (bloquea hasta escribirlo completo) y recién
// entonces inserta la fila de metadatos.
func (uc *ReceiptUseCase) Upload(originalName, tipo string, r io.Reader) (*dto.ReceiptResponse, error) {
	if originalName == "" || r == nil {
		return nil, domain.ErrInvalidInput
	}
	if tipo != "" && !validReceiptTipo(tipo) {
		return nil, domain.ErrInvalidInput
	}
	publicPath, err := uc.store.Save(originalName, r)
	if err != nil {
		return nil, err
	}
	receipt := &entity.Receipt{
		ID:           uuid.New().String(),
		FilePath:     publicPath,
		OriginalName: originalName,
		Tipo:         tipo,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(receipt); err != nil {
		// La fila no existe: no dejar el archivo huérfano.
		if rmErr := uc.store.Remove(publicPath); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("ruta", publicPath).Msg("no se pudo limpiar el archivo tras fallo de insert")
		}
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

// GetByID obtiene los metadatos de un comprobante.
func (uc *ReceiptUseCase) GetByID(id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.ErrNotFound
	}
	return toReceiptResponse(receipt), nil
}

// List lista comprobantes, más recientes primero.
func (uc *ReceiptUseCase) List() ([]*dto.ReceiptResponse, error) {
	receipts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ReceiptResponse, 0, len(receipts))
	for _, r := range receipts {
		out = append(out, toReceiptResponse(r))
	}
	return out, nil
}

// Delete borra primero la fila (transferencia de propiedad) y después intenta
// eliminar el archivo físico. Si el unlink falla se registra y la operación
// igual se considera exitosa: el archivo queda para limpieza posterior.
func (uc *ReceiptUseCase) Delete(id string) error {
	receipt, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	if err := uc.store.Remove(receipt.FilePath); err != nil {
		uc.log.Warn().Err(err).Str("ruta", receipt.FilePath).Msg("no se pudo borrar el archivo físico del comprobante")
	}
	return nil
}

func validReceiptTipo(t string) bool {
	switch t {
	case entity.ReceiptTipoYape, entity.ReceiptTipoDeposito, entity.ReceiptTipoTransferencia:
		return true
	}
	return false
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:           r.ID,
		FilePath:     r.FilePath,
		OriginalName: r.OriginalName,
		Tipo:         r.Tipo,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
	}
}
