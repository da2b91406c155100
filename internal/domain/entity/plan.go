package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de plan.
const (
	PlanTipoResidencial = "RESIDENCIAL"
	PlanTipoEmpresarial = "EMPRESARIAL"
)

// Plan representa un plan de servicio comercializable (ej. "Plan Hogar 50Mb").
type Plan struct {
	ID           string
	Name         string
	Speed        string // descriptor de ancho de banda, ej. "50 Mbps"
	MonthlyPrice decimal.Decimal
	Tipo         string // RESIDENCIAL | EMPRESARIAL
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
