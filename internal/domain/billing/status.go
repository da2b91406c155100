package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
)

// Estados de facturación derivados de un cliente. No se persisten:
// se calculan siempre a partir de sus facturas no pagadas.
const (
	StatusDeudor = "DEUDOR"
	StatusAlDia  = "AL_DIA"
)

// DeriveStatus deriva el estado de facturación de un cliente a partir de su deuda.
// deuda > 0 → DEUDOR; cualquier otro valor → AL_DIA.
// Una deuda negativa no debería producirse jamás (los montos son positivos);
// si llega, se trata como AL_DIA y el llamador decide si alertar.
func DeriveStatus(debt decimal.Decimal) string {
	if debt.IsPositive() {
		return StatusDeudor
	}
	return StatusAlDia
}

// DebtOf suma los montos de las facturas que no están en estado PAGADA.
// Sin facturas, la deuda es cero.
func DebtOf(invoices []*entity.Invoice) decimal.Decimal {
	debt := decimal.Zero
	for _, inv := range invoices {
		if inv.Status != entity.InvoiceStatusPagada {
			debt = debt.Add(inv.Amount)
		}
	}
	return debt
}

// Settles indica si un total acumulado de pagos salda el monto de una factura.
func Settles(totalPaid, invoiceAmount decimal.Decimal) bool {
	return totalPaid.GreaterThanOrEqual(invoiceAmount)
}
