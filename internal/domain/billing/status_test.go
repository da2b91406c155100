package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jvaldiviae/cyberlink-api/internal/domain/billing"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// DeriveStatus debe ser total: deuda positiva → DEUDOR, cero o negativa → AL_DIA.
func TestDeriveStatus_Exhaustivo(t *testing.T) {
	cases := []struct {
		name string
		debt decimal.Decimal
		want string
	}{
		{"deuda cero", decimal.Zero, billing.StatusAlDia},
		{"deuda positiva", dec("100"), billing.StatusDeudor},
		{"deuda positiva mínima", dec("0.01"), billing.StatusDeudor},
		// Negativa no debería producirse; si llega, no se marca como deudor.
		{"deuda negativa", dec("-50"), billing.StatusAlDia},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.DeriveStatus(tc.debt))
		})
	}
}

// La deuda es la suma de montos de facturas no pagadas; VENCIDA también cuenta.
func TestDebtOf_SumaSoloNoPagadas(t *testing.T) {
	invoices := []*entity.Invoice{
		{Amount: dec("100"), Status: entity.InvoiceStatusPendiente},
		{Amount: dec("59.90"), Status: entity.InvoiceStatusVencida},
		{Amount: dec("75"), Status: entity.InvoiceStatusPagada},
	}

	debt := billing.DebtOf(invoices)
	assert.True(t, dec("159.90").Equal(debt), "deuda = pendientes + vencidas, esperaba 159.90 y obtuve %s", debt)
	assert.Equal(t, billing.StatusDeudor, billing.DeriveStatus(debt))
}

// Cliente sin facturas: deuda cero y AL_DIA.
func TestDebtOf_SinFacturas(t *testing.T) {
	debt := billing.DebtOf(nil)
	assert.True(t, debt.IsZero())
	assert.Equal(t, billing.StatusAlDia, billing.DeriveStatus(debt))
}

// Todas pagadas: deuda cero aunque existan facturas.
func TestDebtOf_TodasPagadas(t *testing.T) {
	invoices := []*entity.Invoice{
		{Amount: dec("100"), Status: entity.InvoiceStatusPagada},
		{Amount: dec("100"), Status: entity.InvoiceStatusPagada},
	}
	assert.True(t, billing.DebtOf(invoices).IsZero())
}

func TestSettles(t *testing.T) {
	assert.True(t, billing.Settles(dec("50"), dec("50")), "pago exacto salda la factura")
	assert.True(t, billing.Settles(dec("60"), dec("50")), "sobrepago también salda")
	assert.False(t, billing.Settles(dec("49.99"), dec("50")), "pago parcial no salda")
}
