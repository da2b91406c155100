package dto

import "github.com/shopspring/decimal"

// CreateContractRequest body para POST /api/contratos.
type CreateContractRequest struct {
	ClientID      string `json:"cliente_id"`
	PlanID        string `json:"plan_id"`
	StartDate     string `json:"fecha_alta"` // YYYY-MM-DD, obligatoria
	EndDate       string `json:"fecha_baja,omitempty"`
	Status        string `json:"estado,omitempty"` // default PENDIENTE
	BillingCycle  string `json:"ciclo_facturacion,omitempty"` // default MENSUAL
	PaymentMethod string `json:"metodo_pago,omitempty"`
}

// UpdateContractRequest body para PUT /api/contratos/:id.
type UpdateContractRequest struct {
	ClientID      string `json:"cliente_id"`
	PlanID        string `json:"plan_id"`
	StartDate     string `json:"fecha_alta"`
	EndDate       string `json:"fecha_baja,omitempty"`
	BillingCycle  string `json:"ciclo_facturacion,omitempty"`
	PaymentMethod string `json:"metodo_pago,omitempty"`
}

// ContractStatusRequest body para PATCH /api/contratos/:id/estado.
type ContractStatusRequest struct {
	Status string `json:"estado"`
}

// ContractResponse contrato en respuestas, con los datos de JOIN que usa el panel.
type ContractResponse struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"cliente_id"`
	ClientDNI     string          `json:"cliente_dni,omitempty"`
	ClientName    string          `json:"cliente_nombre,omitempty"`
	PlanID        string          `json:"plan_id"`
	PlanName      string          `json:"plan_nombre,omitempty"`
	PlanSpeed     string          `json:"velocidad,omitempty"`
	PlanPrice     decimal.Decimal `json:"precio_mensual"`
	StartDate     string          `json:"fecha_alta"`
	EndDate       string          `json:"fecha_baja,omitempty"`
	Status        string          `json:"estado"`
	BillingCycle  string          `json:"ciclo_facturacion"`
	PaymentMethod string          `json:"metodo_pago,omitempty"`
	CreatedAt     string          `json:"creado_en"`
}
