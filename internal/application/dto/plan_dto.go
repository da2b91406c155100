package dto

import "github.com/shopspring/decimal"

// CreatePlanRequest body para POST /api/planes.
type CreatePlanRequest struct {
	Name         string          `json:"nombre"`
	Speed        string          `json:"velocidad"`
	MonthlyPrice decimal.Decimal `json:"precio_mensual"`
	Tipo         string          `json:"tipo"` // RESIDENCIAL | EMPRESARIAL
	Active       *bool           `json:"activo,omitempty"`
}

// UpdatePlanRequest body para PUT /api/planes/:id.
type UpdatePlanRequest struct {
	Name         string          `json:"nombre"`
	Speed        string          `json:"velocidad"`
	MonthlyPrice decimal.Decimal `json:"precio_mensual"`
	Tipo         string          `json:"tipo"`
	Active       *bool           `json:"activo,omitempty"`
}

// PlanResponse plan en respuestas.
type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre"`
	Speed        string          `json:"velocidad"`
	MonthlyPrice decimal.Decimal `json:"precio_mensual"`
	Tipo         string          `json:"tipo"`
	Active       bool            `json:"activo"`
	CreatedAt    string          `json:"creado_en"`
}
