package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository. Solo metadatos:
// el archivo físico lo maneja el FileStore.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste los metadatos de un comprobante subido.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO comprobantes (id, ruta_archivo, nombre_original, tipo, creado_en)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.FilePath, receipt.OriginalName, receipt.Tipo, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comprobante: %w", err)
	}
	return nil
}

// GetByID obtiene un comprobante por ID. Devuelve (nil, nil) si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `SELECT id, ruta_archivo, nombre_original, tipo, creado_en FROM comprobantes WHERE id = $1`
	var rc entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rc.ID, &rc.FilePath, &rc.OriginalName, &rc.Tipo, &rc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comprobante: %w", err)
	}
	return &rc, nil
}

// List lista todos los comprobantes, más recientes primero.
func (r *ReceiptRepo) List() ([]*entity.Receipt, error) {
	query := `SELECT id, ruta_archivo, nombre_original, tipo, creado_en FROM comprobantes ORDER BY creado_en DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list comprobantes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rc entity.Receipt
		if err := rows.Scan(&rc.ID, &rc.FilePath, &rc.OriginalName, &rc.Tipo, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comprobante: %w", err)
		}
		list = append(list, &rc)
	}
	return list, rows.Err()
}

// Delete elimina los metadatos. Con pagos que lo referencian -> domain.ErrHasReferences.
func (r *ReceiptRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM comprobantes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete comprobante: %w", err)
	}
	return nil
}
