package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una factura. VENCIDA nunca se marca automáticamente:
// la fija un operador (o un barrido explícito) cuando pasa la fecha de vencimiento.
const (
	InvoiceStatusPendiente = "PENDIENTE"
	InvoiceStatusPagada    = "PAGADA" // terminal
	InvoiceStatusVencida   = "VENCIDA"
)

// Invoice representa una factura emitida contra un contrato.
// ClientID se denormaliza para que los agregados de deuda no pasen por contratos.
type Invoice struct {
	ID          string
	ContractID  string
	ClientID    string
	PeriodFrom  time.Time
	PeriodTo    time.Time
	IssueDate   time.Time
	DueDate     time.Time
	Amount      decimal.Decimal
	Status      string // PENDIENTE | PAGADA | VENCIDA
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Campos de solo lectura poblados por los listados con JOIN a clientes.
	ClientDNI  string
	ClientName string
}
