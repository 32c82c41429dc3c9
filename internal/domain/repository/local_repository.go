package repository

import "github.com/tu-usuario/ventas-campo/internal/domain/entity"

// LocalRepository puerto de persistencia para locales (clientes/negocios).
type LocalRepository interface {
	// Create persiste el local y asigna su ID generado.
	// Devuelve domain.ErrDuplicate si el CI/RIF ya existe.
	Create(local *entity.Local) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id int64) (*entity.Local, error)
	List() ([]*entity.Local, error)
	// Search busca por coincidencia parcial en nombre, CI/RIF o ubicación.
	Search(pattern string) ([]*entity.Local, error)
	Delete(id int64) error
}
