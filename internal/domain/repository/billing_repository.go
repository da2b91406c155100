package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// ClientTotals totales de dinero de un cliente. Saldo = Invoiced − Paid.
// Es una cifra informativa: el estado DEUDOR/AL_DIA se deriva siempre de Debt,
// no de este saldo (los pagos parciales no cambian el estado de la factura).
type ClientTotals struct {
	Invoiced decimal.Decimal
	Paid     decimal.Decimal
}

// BillingRepository consultas de solo lectura para deuda y totales por cliente.
// Nunca muta estado. Debt = SUM(monto) de facturas del cliente con estado ≠ PAGADA;
// cero filas ⇒ cero.
type BillingRepository interface {
	Debt(ctx context.Context, clientID string) (decimal.Decimal, error)
	DebtByClient(ctx context.Context) (map[string]decimal.Decimal, error)
	Totals(ctx context.Context, clientID string) (*ClientTotals, error)
}
