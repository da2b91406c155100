package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jvaldiviae/cyberlink-api/internal/application/dto"
	"github.com/jvaldiviae/cyberlink-api/internal/domain"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/entity"
	"github.com/jvaldiviae/cyberlink-api/internal/domain/repository"
	"github.com/jvaldiviae/cyberlink-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, alta de operadores y
// bootstrap del admin inicial.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password, genera JWT y retorna token + identidad.
// Usuario inexistente y contraseña incorrecta devuelven el mismo ErrUnauthorized:
// el handler los colapsa en un único mensaje genérico para no permitir enumeración.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

// CreateUser crea un operador: hashea password con bcrypt y persiste.
// Devuelve ErrDuplicate si el username ya existe.
func (uc *AuthUseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	switch role {
	case "":
		role = entity.RoleUser
	case entity.RoleAdmin, entity.RoleUser:
	default:
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	out := toUserResponse(user)
	return &out, nil
}

// EnsureAdmin siembra el usuario administrador inicial si no existe ningún usuario.
// Es idempotente: en arranques posteriores no hace nada. Devuelve true si creó.
func (uc *AuthUseCase) EnsureAdmin(username, password string) (bool, error) {
	n, err := uc.userRepo.Count()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	_, err = uc.CreateUser(dto.CreateUserRequest{
		Username: username,
		Password: password,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
	}
}
