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

var _ repository.ContractRepository = (*ContractRepo)(nil)

// ContractRepo implementación de ContractRepository (usable con pool o tx).
// Las lecturas traen datos del cliente y del plan con JOIN: los listados del
// panel muestran DNI, nombre y plan sin consultas extra.
type ContractRepo struct {
	q Querier
}

// NewContractRepository construye el adaptador.
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

const contractSelect = `
	SELECT ct.id, ct.cliente_id, ct.plan_id, ct.fecha_inicio, ct.fecha_fin,
	       ct.estado, ct.ciclo_facturacion, ct.metodo_pago, ct.creado_en, ct.actualizado_en,
	       c.dni, c.nombres || ' ' || c.apellidos,
	       p.nombre, p.velocidad, p.precio_mensual
	FROM contratos ct
	JOIN clientes c ON c.id = ct.cliente_id
	JOIN planes   p ON p.id = ct.plan_id`

// Create persiste un nuevo contrato.
func (r *ContractRepo) Create(contract *entity.Contract) error {
	query := `
		INSERT INTO contratos (id, cliente_id, plan_id, fecha_inicio, fecha_fin,
			estado, ciclo_facturacion, metodo_pago, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.ClientID, contract.PlanID, contract.StartDate, contract.EndDate,
		contract.Status, contract.BillingCycle, contract.PaymentMethod,
		contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert contrato: %w", err)
	}
	return nil
}

// GetByID obtiene un contrato por ID con los datos del cliente y plan.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	row := r.q.QueryRow(context.Background(), contractSelect+` WHERE ct.id = $1`, id)
	ct, err := scanContract(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contrato: %w", err)
	}
	return ct, nil
}

// List lista todos los contratos, más recientes primero.
func (r *ContractRepo) List() ([]*entity.Contract, error) {
	return r.listQuery(contractSelect+` ORDER BY ct.creado_en DESC, ct.id DESC`)
}

// ListByClient lista los contratos de un cliente.
func (r *ContractRepo) ListByClient(clientID string) ([]*entity.Contract, error) {
	return r.listQuery(contractSelect+` WHERE ct.cliente_id = $1 ORDER BY ct.creado_en DESC, ct.id DESC`, clientID)
}

func (r *ContractRepo) listQuery(query string, args ...any) ([]*entity.Contract, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contratos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		ct, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contrato: %w", err)
		}
		list = append(list, ct)
	}
	return list, rows.Err()
}

// Update actualiza un contrato (incluido su estado).
func (r *ContractRepo) Update(contract *entity.Contract) error {
	query := `
		UPDATE contratos
		SET plan_id = $2, fecha_inicio = $3, fecha_fin = $4, estado = $5,
		    ciclo_facturacion = $6, metodo_pago = $7, actualizado_en = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		contract.ID, contract.PlanID, contract.StartDate, contract.EndDate, contract.Status,
		contract.BillingCycle, contract.PaymentMethod, contract.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contrato: %w", err)
	}
	return nil
}

// Delete elimina un contrato. Con facturas que lo referencian -> domain.ErrHasReferences.
func (r *ContractRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contratos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete contrato: %w", err)
	}
	return nil
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var ct entity.Contract
	err := row.Scan(
		&ct.ID, &ct.ClientID, &ct.PlanID, &ct.StartDate, &ct.EndDate,
		&ct.Status, &ct.BillingCycle, &ct.PaymentMethod, &ct.CreatedAt, &ct.UpdatedAt,
		&ct.ClientDNI, &ct.ClientName,
		&ct.PlanName, &ct.PlanSpeed, &ct.PlanPrice,
	)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}
