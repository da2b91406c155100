package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un pago registrado contra una factura.
// ReceiptID es opcional: el comprobante se sube por separado y se adjunta después.
type Payment struct {
	ID        string
	InvoiceID string
	ClientID  string
	PaidAt    time.Time
	Amount    decimal.Decimal
	Method    string // texto libre: EFECTIVO, YAPE, TRANSFERENCIA...
	Reference string // nro de operación u otra referencia externa
	ReceiptID *string
	CreatedAt time.Time

	// Campos de solo lectura poblados por los listados con JOIN.
	ClientDNI   string
	ClientName  string
	ReceiptPath string
	ReceiptTipo string
}
