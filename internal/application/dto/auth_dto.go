package dto

// RegisterRequest entrada para cadastro (email + senha em texto, hasheada no provedor).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse saída de login/cadastro com o token JWT.
type AuthResponse struct {
	Token string `json:"token"`
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SessionResponse estado atual da sessão observada.
type SessionResponse struct {
	State string `json:"state"`
	UID   string `json:"uid,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}
