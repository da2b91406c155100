package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
)

var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación de PlanRepository (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador.
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

const planColumns = `id, nombre, velocidad, precio_mensual, tipo, activo, creado_en, actualizado_en`

// Create persiste un nuevo plan.
func (r *PlanRepo) Create(plan *entity.Plan) error {
	query := `
		INSERT INTO planes (id, nombre, velocidad, precio_mensual, tipo, activo, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.Name, plan.Speed, plan.MonthlyPrice, plan.Tipo, plan.Active,
		plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por ID. Devuelve (nil, nil) si no existe.
func (r *PlanRepo) GetByID(id string) (*entity.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM planes WHERE id = $1`
	var p entity.Plan
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Speed, &p.MonthlyPrice, &p.Tipo, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return &p, nil
}

// List lista todos los planes.
func (r *PlanRepo) List() ([]*entity.Plan, error) {
	return r.list(`SELECT ` + planColumns + ` FROM planes ORDER BY creado_en DESC, id DESC`)
}

// ListByActive filtra por la bandera activo. Con true devuelve los planes
// contratables (los que muestra el portal público).
func (r *PlanRepo) ListByActive(active bool) ([]*entity.Plan, error) {
	return r.list(`SELECT `+planColumns+` FROM planes WHERE activo = $1 ORDER BY creado_en DESC, id DESC`, active)
}

func (r *PlanRepo) list(query string, args ...any) ([]*entity.Plan, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list planes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Speed, &p.MonthlyPrice, &p.Tipo, &p.Active, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un plan.
func (r *PlanRepo) Update(plan *entity.Plan) error {
	query := `
		UPDATE planes
		SET nombre = $2, velocidad = $3, precio_mensual = $4, tipo = $5, activo = $6, actualizado_en = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		plan.ID, plan.Name, plan.Speed, plan.MonthlyPrice, plan.Tipo, plan.Active, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// Delete elimina un plan. Con contratos que lo referencian -> domain.ErrHasReferences.
func (r *PlanRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM planes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}
