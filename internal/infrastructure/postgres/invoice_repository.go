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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceSelect = `
	SELECT f.id, f.contrato_id, f.cliente_id, f.periodo_desde, f.periodo_hasta,
	       f.fecha_emision, f.fecha_vencimiento, f.monto, f.estado, f.creado_en, f.actualizado_en,
	       c.dni, c.nombres || ' ' || c.apellidos
	FROM facturas f
	JOIN clientes c ON c.id = f.cliente_id`

// Orden estable de listados: emisión descendente y, a igual fecha, ID descendente.
const invoiceOrder = ` ORDER BY f.fecha_emision DESC, f.id DESC`

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO facturas (id, contrato_id, cliente_id, periodo_desde, periodo_hasta,
			fecha_emision, fecha_vencimiento, monto, estado, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ContractID, invoice.ClientID, invoice.PeriodFrom, invoice.PeriodTo,
		invoice.IssueDate, invoice.DueDate, invoice.Amount, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID con los datos básicos del cliente.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	row := r.q.QueryRow(context.Background(), invoiceSelect+` WHERE f.id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	return inv, nil
}

// List lista todas las facturas.
func (r *InvoiceRepo) List() ([]*entity.Invoice, error) {
	return r.listQuery(invoiceSelect + invoiceOrder)
}

// ListByClient lista las facturas de un cliente.
func (r *InvoiceRepo) ListByClient(clientID string) ([]*entity.Invoice, error) {
	return r.listQuery(invoiceSelect+` WHERE f.cliente_id = $1`+invoiceOrder, clientID)
}

// ListByContract lista las facturas de un contrato.
func (r *InvoiceRepo) ListByContract(contractID string) ([]*entity.Invoice, error) {
	return r.listQuery(invoiceSelect+` WHERE f.contrato_id = $1`+invoiceOrder, contractID)
}

func (r *InvoiceRepo) listQuery(query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update actualiza una factura (el estado solo cambia por UpdateStatus).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	query := `
		UPDATE facturas
		SET contrato_id = $2, cliente_id = $3, periodo_desde = $4, periodo_hasta = $5,
		    fecha_emision = $6, fecha_vencimiento = $7, monto = $8, actualizado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.ContractID, invoice.ClientID, invoice.PeriodFrom, invoice.PeriodTo,
		invoice.IssueDate, invoice.DueDate, invoice.Amount, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

// UpdateStatus cambia solo el estado de la factura.
func (r *InvoiceRepo) UpdateStatus(id, status string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE facturas SET estado = $2, actualizado_en = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update estado factura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una factura. Con pagos registrados -> domain.ErrHasReferences.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM facturas WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete factura: %w", err)
	}
	return nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.ContractID, &inv.ClientID, &inv.PeriodFrom, &inv.PeriodTo,
		&inv.IssueDate, &inv.DueDate, &inv.Amount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
		&inv.ClientDNI, &inv.ClientName,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
