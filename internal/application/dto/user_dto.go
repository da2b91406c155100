package dto

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse identidad de operador en respuestas (nunca incluye el hash).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"rol"`
}

// LoginResponse token firmado más la identidad decodificada.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest body para POST /api/usuarios (solo ADMIN).
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"rol,omitempty"` // default USER
}
