package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
// Las lecturas traen el cliente con JOIN y el comprobante con LEFT JOIN
// (un pago puede no tener comprobante adjunto).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentSelect = `
	SELECT p.id, p.factura_id, p.cliente_id, p.fecha_pago, p.monto,
	       p.metodo_pago, p.referencia, p.comprobante_id, p.creado_en,
	       c.dni, c.nombres || ' ' || c.apellidos,
	       co.ruta_archivo, co.tipo
	FROM pagos p
	JOIN clientes c       ON c.id  = p.cliente_id
	LEFT JOIN comprobantes co ON co.id = p.comprobante_id`

// Create persiste un nuevo pago.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO pagos (id, factura_id, cliente_id, fecha_pago, monto,
			metodo_pago, referencia, comprobante_id, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.InvoiceID, payment.ClientID, payment.PaidAt, payment.Amount,
		payment.Method, payment.Reference, payment.ReceiptID, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pago: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	row := r.q.QueryRow(context.Background(), paymentSelect+` WHERE p.id = $1`, id)
	p, err := scanPayment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago: %w", err)
	}
	return p, nil
}

// List lista todos los pagos, más recientes primero.
func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	return r.listQuery(paymentSelect + ` ORDER BY p.fecha_pago DESC, p.id DESC`)
}

// ListByClient lista los pagos de un cliente.
func (r *PaymentRepo) ListByClient(clientID string) ([]*entity.Payment, error) {
	return r.listQuery(paymentSelect+` WHERE p.cliente_id = $1 ORDER BY p.fecha_pago DESC, p.id DESC`, clientID)
}

// ListByInvoice lista los pagos de una factura, en orden de registro.
func (r *PaymentRepo) ListByInvoice(invoiceID string) ([]*entity.Payment, error) {
	return r.listQuery(paymentSelect+` WHERE p.factura_id = $1 ORDER BY p.creado_en, p.id`, invoiceID)
}

// TotalForInvoice suma los pagos acumulados de una factura (cero sin pagos).
// Se invoca dentro de la transacción de registro para decidir el saldado.
func (r *PaymentRepo) TotalForInvoice(invoiceID string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(monto), 0) FROM pagos WHERE factura_id = $1`, invoiceID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total pagos factura: %w", err)
	}
	return total, nil
}

func (r *PaymentRepo) listQuery(query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pagos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pago: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables de un pago. El estado de la factura no
// se recalcula: registrar mal un pago se corrige con operaciones explícitas.
func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE pagos
		SET fecha_pago = $2, monto = $3, metodo_pago = $4, referencia = $5, comprobante_id = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.PaidAt, payment.Amount, payment.Method, payment.Reference, payment.ReceiptID,
	)
	if err != nil {
		return fmt.Errorf("update pago: %w", err)
	}
	return nil
}

// Delete elimina un pago por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM pagos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pago: %w", err)
	}
	return nil
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var receiptPath, receiptTipo sql.NullString
	err := row.Scan(
		&p.ID, &p.InvoiceID, &p.ClientID, &p.PaidAt, &p.Amount,
		&p.Method, &p.Reference, &p.ReceiptID, &p.CreatedAt,
		&p.ClientDNI, &p.ClientName,
		&receiptPath, &receiptTipo,
	)
	if err != nil {
		return nil, err
	}
	p.ReceiptPath = receiptPath.String
	p.ReceiptTipo = receiptTipo.String
	return &p, nil
}
