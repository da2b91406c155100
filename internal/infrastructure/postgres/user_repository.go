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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario. Username duplicado -> domain.ErrDuplicate.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO usuarios (id, username, password_hash, rol, creado_en)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Username, user.PasswordHash, user.Role, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.getOne(`SELECT id, username, password_hash, rol, creado_en FROM usuarios WHERE id = $1`, id)
}

// GetByUsername obtiene un usuario por username (búsqueda exacta).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.getOne(`SELECT id, username, password_hash, rol, creado_en FROM usuarios WHERE username = $1`, username)
}

// Count devuelve la cantidad de usuarios. Cero dispara el sembrado del admin inicial.
func (r *UserRepo) Count() (int, error) {
	var n int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM usuarios`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count usuarios: %w", err)
	}
	return n, nil
}

func (r *UserRepo) getOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
