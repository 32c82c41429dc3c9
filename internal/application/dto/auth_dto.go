package dto

// RegisterRequest alta de un vendedor.
type RegisterRequest struct {
	Nombre string `json:"nombre"`
	Clave  string `json:"clave"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Nombre string `json:"nombre"`
	Clave  string `json:"clave"`
}

// LoginResponse token de sesión emitido.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
	Nombre string `json:"nombre"`
}
