package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

var _ repository.LocalRepository = (*LocalRepo)(nil)

// LocalRepo implementación de LocalRepository sobre SQLite (usable con DB o tx).
type LocalRepo struct {
	q Querier
}

// NewLocalRepository construye el adaptador. Pasar *DB o *sql.Tx (Querier).
func NewLocalRepository(q Querier) *LocalRepo {
	return &LocalRepo{q: q}
}

// Create persiste un nuevo local y asigna el ID generado.
func (r *LocalRepo) Create(local *entity.Local) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO locales (ci_rif, tipo_local, nombre_local, ubicacion_texto, lat, lon)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		local.CIRif, local.TipoLocal, local.NombreLocal, local.UbicacionTexto, local.Lat, local.Lon,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el CI/RIF '%s' ya existe: %w", local.CIRif, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert local: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id de local generado: %w", err)
	}
	local.ID = id
	return nil
}

// GetByID obtiene un local por ID. Devuelve (nil, nil) si no existe.
func (r *LocalRepo) GetByID(id int64) (*entity.Local, error) {
	var l entity.Local
	err := r.q.QueryRowContext(context.Background(),
		`SELECT id, ci_rif, tipo_local, nombre_local, ubicacion_texto, lat, lon
		 FROM locales WHERE id = ?`, id,
	).Scan(&l.ID, &l.CIRif, &l.TipoLocal, &l.NombreLocal, &l.UbicacionTexto, &l.Lat, &l.Lon)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get local: %w", err)
	}
	return &l, nil
}

// List devuelve todos los locales registrados.
func (r *LocalRepo) List() ([]*entity.Local, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT id, ci_rif, tipo_local, nombre_local, ubicacion_texto, lat, lon FROM locales`)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	defer rows.Close()
	return scanLocales(rows)
}

// Search busca locales por coincidencia parcial en nombre, CI/RIF o ubicación.
func (r *LocalRepo) Search(pattern string) ([]*entity.Local, error) {
	like := "%" + pattern + "%"
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT id, ci_rif, tipo_local, nombre_local, ubicacion_texto, lat, lon
		 FROM locales
		 WHERE nombre_local LIKE ? OR ci_rif LIKE ? OR ubicacion_texto LIKE ?`,
		like, like, like,
	)
	if err != nil {
		return nil, fmt.Errorf("search locales: %w", err)
	}
	defer rows.Close()
	return scanLocales(rows)
}

// Delete elimina un local; sus facturas y líneas caen en cascada.
func (r *LocalRepo) Delete(id int64) error {
	if _, err := r.q.ExecContext(context.Background(), `DELETE FROM locales WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete local: %w", err)
	}
	return nil
}

func scanLocales(rows *sql.Rows) ([]*entity.Local, error) {
	var list []*entity.Local
	for rows.Next() {
		var l entity.Local
		if err := rows.Scan(&l.ID, &l.CIRif, &l.TipoLocal, &l.NombreLocal, &l.UbicacionTexto, &l.Lat, &l.Lon); err != nil {
			return nil, fmt.Errorf("scan local: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
