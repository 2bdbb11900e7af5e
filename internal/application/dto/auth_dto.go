package dto

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Nombre   string `json:"nombre,omitempty"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse token emitido tras un login exitoso.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserResponse usuario sin el hash de contraseña.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nombre   string `json:"nombre"`
	Activo   bool   `json:"activo"`
	Rol      string `json:"rol"`
}
