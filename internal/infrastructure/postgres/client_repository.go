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

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository (usable con pool o tx).
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, dni, nombres, apellidos, telefono, email, direccion, estado, creado_en, actualizado_en`

// Create persiste un nuevo cliente. DNI duplicado -> domain.ErrDuplicate.
func (r *ClientRepo) Create(client *entity.Client) error {
	query := `
		INSERT INTO clientes (id, dni, nombres, apellidos, telefono, email, direccion, estado, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.DNI, client.FirstName, client.LastName, client.Phone,
		client.Email, client.Address, client.Status, client.CreatedAt, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (r *ClientRepo) GetByID(id string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clientes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByDNI obtiene un cliente por DNI (búsqueda exacta).
func (r *ClientRepo) GetByDNI(dni string) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clientes WHERE dni = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, dni))
}

// List lista todos los clientes, más recientes primero.
func (r *ClientRepo) List() ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clientes ORDER BY creado_en DESC, id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(
			&c.ID, &c.DNI, &c.FirstName, &c.LastName, &c.Phone,
			&c.Email, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente.
func (r *ClientRepo) Update(client *entity.Client) error {
	query := `
		UPDATE clientes
		SET dni = $2, nombres = $3, apellidos = $4, telefono = $5, email = $6,
		    direccion = $7, estado = $8, actualizado_en = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		client.ID, client.DNI, client.FirstName, client.LastName, client.Phone,
		client.Email, client.Address, client.Status, client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID. Con contratos, facturas o pagos vivos
// la FK RESTRICT lo impide -> domain.ErrHasReferences.
func (r *ClientRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrHasReferences
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

func (r *ClientRepo) scanOne(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(
		&c.ID, &c.DNI, &c.FirstName, &c.LastName, &c.Phone,
		&c.Email, &c.Address, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}
