package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

var _ repository.BillingRepository = (*BillingRepo)(nil)

// BillingRepo consultas de solo lectura para deuda y totales por cliente.
// La deuda es SUM(monto) de facturas con estado ≠ PAGADA: una factura se
// cuenta completa hasta que queda saldada, los pagos parciales no la reducen.
type BillingRepo struct {
	pool *pgxpool.Pool
}

// NewBillingRepository construye el adaptador de agregados de facturación.
func NewBillingRepository(pool *pgxpool.Pool) *BillingRepo {
	return &BillingRepo{pool: pool}
}

// Debt devuelve la deuda de un cliente. Cero filas ⇒ cero.
func (r *BillingRepo) Debt(ctx context.Context, clientID string) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(monto), 0)
		FROM facturas
		WHERE cliente_id = $1 AND estado <> $2`
	var debt decimal.Decimal
	err := r.pool.QueryRow(ctx, query, clientID, entity.InvoiceStatusPagada).Scan(&debt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("billing.Debt: %w", err)
	}
	return debt, nil
}

// DebtByClient devuelve la deuda de todos los clientes en una sola consulta,
// para decorar los listados sin N+1. Clientes sin facturas impagas no aparecen
// en el mapa: su deuda es cero.
func (r *BillingRepo) DebtByClient(ctx context.Context) (map[string]decimal.Decimal, error) {
	const query = `
		SELECT cliente_id, SUM(monto)
		FROM facturas
		WHERE estado <> $1
		GROUP BY cliente_id`
	rows, err := r.pool.Query(ctx, query, entity.InvoiceStatusPagada)
	if err != nil {
		return nil, fmt.Errorf("billing.DebtByClient: %w", err)
	}
	defer rows.Close()

	debts := make(map[string]decimal.Decimal)
	for rows.Next() {
		var clientID string
		var debt decimal.Decimal
		if err := rows.Scan(&clientID, &debt); err != nil {
			return nil, fmt.Errorf("billing.DebtByClient scan: %w", err)
		}
		debts[clientID] = debt
	}
	return debts, rows.Err()
}

// Totals devuelve facturado y pagado totales del cliente. Son cifras
// informativas: el estado DEUDOR/AL_DIA se deriva de Debt, no del saldo.
func (r *BillingRepo) Totals(ctx context.Context, clientID string) (*repository.ClientTotals, error) {
	const query = `
		SELECT
		    COALESCE((SELECT SUM(monto) FROM facturas WHERE cliente_id = $1), 0) AS facturado,
		    COALESCE((SELECT SUM(monto) FROM pagos    WHERE cliente_id = $1), 0) AS pagado`
	var t repository.ClientTotals
	err := r.pool.QueryRow(ctx, query, clientID).Scan(&t.Invoiced, &t.Paid)
	if err != nil {
		return nil, fmt.Errorf("billing.Totals: %w", err)
	}
	return &t, nil
}
