package dto

import "github.com/shopspring/decimal"

// CreateClientRequest body para POST /api/clientes (y la solicitud del portal público,
// que ignora el campo estado y registra siempre un PROSPECTO).
type CreateClientRequest struct {
	DNI       string `json:"dni"`
	FirstName string `json:"nombres"`
	LastName  string `json:"apellidos"`
	Phone     string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"direccion,omitempty"`
	Status    string `json:"estado,omitempty"`
}

// UpdateClientRequest body para PUT /api/clientes/:id.
type UpdateClientRequest struct {
	DNI       string `json:"dni"`
	FirstName string `json:"nombres"`
	LastName  string `json:"apellidos"`
	Phone     string `json:"telefono,omitempty"`
	Email     string `json:"email,omitempty"`
	Address   string `json:"direccion,omitempty"`
	Status    string `json:"estado,omitempty"`
}

// ClientResponse cliente en respuestas. Deuda y EstadoFacturacion son derivados:
// nunca se persisten, se calculan de las facturas no pagadas en cada lectura.
type ClientResponse struct {
	ID               string          `json:"id"`
	DNI              string          `json:"dni"`
	FirstName        string          `json:"nombres"`
	LastName         string          `json:"apellidos"`
	Phone            string          `json:"telefono,omitempty"`
	Email            string          `json:"email,omitempty"`
	Address          string          `json:"direccion,omitempty"`
	Status           string          `json:"estado"`
	Debt             decimal.Decimal `json:"deuda"`
	EstadoFacturacion string         `json:"estado_facturacion"` // DEUDOR | AL_DIA
	CreatedAt        string          `json:"creado_en"`
}

// ClientSummaryResponse respuesta de GET /api/clientes/:id/resumen.
// Saldo proviene de totales (facturado − pagado) y puede diferir de Deuda
// cuando hay pagos parciales sin saldar factura; Deuda manda para el estado.
type ClientSummaryResponse struct {
	ClientID          string          `json:"cliente_id"`
	TotalInvoiced     decimal.Decimal `json:"total_facturado"`
	TotalPaid         decimal.Decimal `json:"total_pagado"`
	Balance           decimal.Decimal `json:"saldo"`
	Debt              decimal.Decimal `json:"deuda"`
	EstadoFacturacion string          `json:"estado_facturacion"`
}

// ClientStatusRequest body para PATCH /api/clientes/:id/estado.
type ClientStatusRequest struct {
	Status string `json:"estado"`
}
