package entity

import "time"

// Usuario es un vendedor con acceso al servicio (sesión local).
type Usuario struct {
	ID        int64
	Nombre    string // único
	ClaveHash string // bcrypt
	CreatedAt time.Time
}
