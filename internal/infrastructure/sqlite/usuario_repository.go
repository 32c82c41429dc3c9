package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación de UsuarioRepository sobre SQLite.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un nuevo usuario y asigna el ID generado.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO usuarios (nombre, clave_hash, created_at) VALUES (?, ?, ?)`,
		usuario.Nombre, usuario.ClaveHash, usuario.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el usuario '%s' ya existe: %w", usuario.Nombre, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id de usuario generado: %w", err)
	}
	usuario.ID = id
	return nil
}

// GetByNombre obtiene un usuario por nombre. Devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByNombre(nombre string) (*entity.Usuario, error) {
	var u entity.Usuario
	var createdAt string
	err := r.q.QueryRowContext(context.Background(),
		`SELECT id, nombre, clave_hash, created_at FROM usuarios WHERE nombre = ?`, nombre,
	).Scan(&u.ID, &u.Nombre, &u.ClaveHash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		u.CreatedAt = t
	}
	return &u, nil
}
