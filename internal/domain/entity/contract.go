package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un contrato.
const (
	ContractStatusPendiente  = "PENDIENTE"
	ContractStatusActivo     = "ACTIVO"
	ContractStatusSuspendido = "SUSPENDIDO"
	ContractStatusCancelado  = "CANCELADO" // terminal
)

// Ciclos de facturación.
const (
	CicloMensual    = "MENSUAL"
	CicloTrimestral = "TRIMESTRAL"
	CicloAnual      = "ANUAL"
)

// Contract vincula un cliente con un plan contratado.
// El campo Status es autoritativo: el sistema nunca lo expira automáticamente.
type Contract struct {
	ID            string
	ClientID      string
	PlanID        string
	StartDate     time.Time
	EndDate       *time.Time // nil mientras el contrato siga vigente
	Status        string     // PENDIENTE | ACTIVO | SUSPENDIDO | CANCELADO
	BillingCycle  string     // MENSUAL | TRIMESTRAL | ANUAL
	PaymentMethod string     // texto libre: EFECTIVO, YAPE, TRANSFERENCIA...
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Campos de solo lectura poblados por los listados con JOIN a clientes y planes.
	ClientDNI  string
	ClientName string
	PlanName   string
	PlanSpeed  string
	PlanPrice  decimal.Decimal
}
