package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvaldiviae/cyberlink-api/internal/application/auth"
	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
)

// fakeUserRepo repositorio en memoria para los tests del caso de uso.
type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.users[u.Username]; ok {
		return domain.ErrDuplicate
	}
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.users[username], nil
}

func (r *fakeUserRepo) Count() (int, error) { return len(r.users), nil }

func newUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 480,
		Issuer:     "cyberlink-test",
	})
}

// El bootstrap siembra el admin solo cuando no hay usuarios, y luego no vuelve a crear.
func TestEnsureAdmin_Idempotente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	created, err := uc.EnsureAdmin("admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created, "primer arranque debe sembrar el admin")

	u, _ := repo.GetByUsername("admin")
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.NotEqual(t, "admin123", u.PasswordHash, "la contraseña nunca se guarda en plano")

	created, err = uc.EnsureAdmin("admin", "otra-clave")
	require.NoError(t, err)
	assert.False(t, created, "segundo arranque no debe re-sembrar")
	assert.Len(t, repo.users, 1)
}

// Login correcto del admin sembrado: token presente e identidad con rol ADMIN.
func TestLogin_AdminSembrado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	_, err := uc.EnsureAdmin("admin", "admin123")
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)
}

// Usuario desconocido y contraseña incorrecta producen el mismo error genérico.
func TestLogin_ErroresIndistinguibles(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)
	_, err := uc.EnsureAdmin("admin", "admin123")
	require.NoError(t, err)

	_, errBadPass := uc.Login(dto.LoginRequest{Username: "admin", Password: "incorrecta"})
	_, errNoUser := uc.Login(dto.LoginRequest{Username: "noexiste", Password: "admin123"})

	assert.ErrorIs(t, errBadPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errBadPass, errNoUser, "ambos fallos deben ser indistinguibles")
}

// Username duplicado se rechaza con el error de duplicado, no con uno genérico.
func TestCreateUser_Duplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newUC(repo)

	_, err := uc.CreateUser(dto.CreateUserRequest{Username: "maria", Password: "clave123"})
	require.NoError(t, err)

	_, err = uc.CreateUser(dto.CreateUserRequest{Username: "maria", Password: "otra456"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.users, 1, "solo debe quedar una fila")
}

// Rol vacío por defecto es USER; un rol inventado se rechaza.
func TestCreateUser_Roles(t *testing.T) {
	uc := newUC(newFakeUserRepo())

	u, err := uc.CreateUser(dto.CreateUserRequest{Username: "jose", Password: "clave123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, u.Role)

	_, err = uc.CreateUser(dto.CreateUserRequest{Username: "ana", Password: "clave123", Role: "SUPREMO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
