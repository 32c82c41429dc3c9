package repository

import "github.com/tu-usuario/ventas-campo/internal/domain/entity"

// UsuarioRepository puerto de persistencia para usuarios (vendedores).
type UsuarioRepository interface {
	// Create persiste el usuario. Devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(usuario *entity.Usuario) error
	// GetByNombre devuelve (nil, nil) si no existe.
	GetByNombre(nombre string) (*entity.Usuario, error)
}
