package dto

import "github.com/shopspring/decimal"

// CreateInvoiceRequest body para POST /api/facturas.
type CreateInvoiceRequest struct {
	ContractID string          `json:"contrato_id"`
	ClientID   string          `json:"cliente_id"`
	PeriodFrom string          `json:"periodo_desde"` // YYYY-MM-DD
	PeriodTo   string          `json:"periodo_hasta"`
	IssueDate  string          `json:"fecha_emision"`
	DueDate    string          `json:"fecha_vencimiento"`
	Amount     decimal.Decimal `json:"monto"`
	Status     string          `json:"estado,omitempty"` // default PENDIENTE
}

// UpdateInvoiceRequest body para PUT /api/facturas/:id (actualización completa
// salvo el estado, que solo cambia vía PATCH /estado).
type UpdateInvoiceRequest struct {
	ContractID string          `json:"contrato_id"`
	ClientID   string          `json:"cliente_id"`
	PeriodFrom string          `json:"periodo_desde"`
	PeriodTo   string          `json:"periodo_hasta"`
	IssueDate  string          `json:"fecha_emision"`
	DueDate    string          `json:"fecha_vencimiento"`
	Amount     decimal.Decimal `json:"monto"`
}

// InvoiceStatusRequest body para PATCH /api/facturas/:id/estado.
type InvoiceStatusRequest struct {
	Status string `json:"estado"` // PENDIENTE | PAGADA | VENCIDA
}

// InvoiceResponse factura en respuestas, con datos básicos del cliente.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	ContractID string          `json:"contrato_id"`
	ClientID   string          `json:"cliente_id"`
	ClientDNI  string          `json:"cliente_dni,omitempty"`
	ClientName string          `json:"cliente_nombre,omitempty"`
	PeriodFrom string          `json:"periodo_desde"`
	PeriodTo   string          `json:"periodo_hasta"`
	IssueDate  string          `json:"fecha_emision"`
	DueDate    string          `json:"fecha_vencimiento"`
	Amount     decimal.Decimal `json:"monto"`
	Status     string          `json:"estado"`
	CreatedAt  string          `json:"creado_en"`
}

// CreatePaymentRequest body para POST /api/pagos.
type CreatePaymentRequest struct {
	InvoiceID string          `json:"factura_id"`
	ClientID  string          `json:"cliente_id"`
	PaidAt    string          `json:"fecha_pago"` // YYYY-MM-DD
	Amount    decimal.Decimal `json:"monto"`
	Method    string          `json:"metodo_pago,omitempty"`
	Reference string          `json:"referencia,omitempty"`
	ReceiptID string          `json:"comprobante_id,omitempty"`
}

// UpdatePaymentRequest body para PUT /api/pagos/:id.
type UpdatePaymentRequest struct {
	PaidAt    string          `json:"fecha_pago"`
	Amount    decimal.Decimal `json:"monto"`
	Method    string          `json:"metodo_pago,omitempty"`
	Reference string          `json:"referencia,omitempty"`
	ReceiptID string          `json:"comprobante_id,omitempty"`
}

// PaymentResponse pago en respuestas. InvoiceSettled indica si este registro
// dejó la factura en PAGADA (los pagos acumulados alcanzaron el monto).
type PaymentResponse struct {
	ID             string          `json:"id"`
	InvoiceID      string          `json:"factura_id"`
	ClientID       string          `json:"cliente_id"`
	ClientDNI      string          `json:"cliente_dni,omitempty"`
	ClientName     string          `json:"cliente_nombre,omitempty"`
	PaidAt         string          `json:"fecha_pago"`
	Amount         decimal.Decimal `json:"monto"`
	Method         string          `json:"metodo_pago,omitempty"`
	Reference      string          `json:"referencia,omitempty"`
	ReceiptID      string          `json:"comprobante_id,omitempty"`
	ReceiptPath    string          `json:"comprobante_ruta,omitempty"`
	ReceiptTipo    string          `json:"comprobante_tipo,omitempty"`
	InvoiceSettled bool            `json:"factura_saldada,omitempty"`
	CreatedAt      string          `json:"creado_en"`
}

// PortalClientResponse respuesta del portal público de autoconsulta por DNI:
// el cliente, su estado de facturación derivado, y sus facturas y pagos.
type PortalClientResponse struct {
	Client   ClientResponse     `json:"cliente"`
	Invoices []*InvoiceResponse `json:"facturas"`
	Payments []*PaymentResponse `json:"pagos"`
}
