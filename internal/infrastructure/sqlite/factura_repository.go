package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository sobre SQLite (usable con DB o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar *DB o *sql.Tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

// Create persiste la cabecera de la factura y asigna el ID generado.
// La fecha se guarda como texto ISO-8601 en UTC.
func (r *FacturaRepo) Create(factura *entity.Factura) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO facturas (local_id, fecha_factura, total_neto, total_bruto)
		 VALUES (?, ?, ?, ?)`,
		factura.LocalID,
		factura.FechaFactura.UTC().Format(time.RFC3339),
		factura.TotalNeto.String(),
		factura.TotalBruto.String(),
	)
	if err != nil {
		return fmt.Errorf("insert factura: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id de factura generado: %w", err)
	}
	factura.ID = id
	return nil
}

// CreateLinea persiste una línea de la factura.
func (r *FacturaRepo) CreateLinea(linea *entity.FacturaLinea) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO facturacion_productos (factura_id, producto_id, cantidad, precio_unitario)
		 VALUES (?, ?, ?, ?)`,
		linea.FacturaID, linea.ProductoID, linea.Cantidad, linea.PrecioUnitario.String(),
	)
	if err != nil {
		return fmt.Errorf("insert línea de factura: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id de línea generado: %w", err)
	}
	linea.ID = id
	return nil
}

// GetByID obtiene la cabecera de una factura. Devuelve (nil, nil) si no existe.
func (r *FacturaRepo) GetByID(id int64) (*entity.Factura, error) {
	row := r.q.QueryRowContext(context.Background(),
		`SELECT id, local_id, fecha_factura, total_neto, total_bruto
		 FROM facturas WHERE id = ?`, id)
	var f entity.Factura
	var fecha, neto, bruto string
	if err := row.Scan(&f.ID, &f.LocalID, &fecha, &neto, &bruto); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	if err := hidratarFactura(&f, fecha, neto, bruto); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetLineas devuelve el detalle de las líneas unido con el producto.
func (r *FacturaRepo) GetLineas(facturaID int64) ([]*entity.FacturaLineaDetalle, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT fp.cantidad,
		        fp.precio_unitario,
		        p.nombre,
		        p.precio_venta
		 FROM facturacion_productos fp
		 JOIN productos p ON fp.producto_id = p.id
		 WHERE fp.factura_id = ?
		 ORDER BY fp.id`, facturaID)
	if err != nil {
		return nil, fmt.Errorf("list líneas de factura: %w", err)
	}
	defer rows.Close()

	var list []*entity.FacturaLineaDetalle
	for rows.Next() {
		var d entity.FacturaLineaDetalle
		var unitario, actual string
		if err := rows.Scan(&d.Cantidad, &unitario, &d.NombreProducto, &actual); err != nil {
			return nil, fmt.Errorf("scan línea: %w", err)
		}
		if d.PrecioUnitario, err = decimal.NewFromString(unitario); err != nil {
			return nil, fmt.Errorf("precio_unitario de la línea: %w", err)
		}
		if d.PrecioActual, err = decimal.NewFromString(actual); err != nil {
			return nil, fmt.Errorf("precio_venta del producto: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListByLocal devuelve las facturas de un local, más reciente primero.
func (r *FacturaRepo) ListByLocal(localID int64) ([]*entity.Factura, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT id, local_id, fecha_factura, total_neto, total_bruto
		 FROM facturas WHERE local_id = ?
		 ORDER BY fecha_factura DESC`, localID)
	if err != nil {
		return nil, fmt.Errorf("list facturas por local: %w", err)
	}
	defer rows.Close()

	var list []*entity.Factura
	for rows.Next() {
		var f entity.Factura
		var fecha, neto, bruto string
		if err := rows.Scan(&f.ID, &f.LocalID, &fecha, &neto, &bruto); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		if err := hidratarFactura(&f, fecha, neto, bruto); err != nil {
			return nil, err
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// ListDelDia devuelve las facturas emitidas el día indicado, con el nombre
// del local. Se compara con DATE() sobre el timestamp ISO persistido.
func (r *FacturaRepo) ListDelDia(dia time.Time) ([]*entity.FacturaConLocal, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT f.id, f.local_id, f.fecha_factura, f.total_neto, f.total_bruto, l.nombre_local
		 FROM facturas f
		 JOIN locales l ON f.local_id = l.id
		 WHERE DATE(f.fecha_factura) = DATE(?)
		 ORDER BY f.id DESC`,
		dia.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list facturas del día: %w", err)
	}
	defer rows.Close()

	var list []*entity.FacturaConLocal
	for rows.Next() {
		var fc entity.FacturaConLocal
		var fecha, neto, bruto string
		if err := rows.Scan(&fc.ID, &fc.LocalID, &fecha, &neto, &bruto, &fc.NombreLocal); err != nil {
			return nil, fmt.Errorf("scan factura del día: %w", err)
		}
		if err := hidratarFactura(&fc.Factura, fecha, neto, bruto); err != nil {
			return nil, err
		}
		list = append(list, &fc)
	}
	return list, rows.Err()
}

func hidratarFactura(f *entity.Factura, fecha, neto, bruto string) error {
	t, err := time.Parse(time.RFC3339, fecha)
	if err != nil {
		return fmt.Errorf("fecha_factura de la factura %d: %w", f.ID, err)
	}
	f.FechaFactura = t
	if f.TotalNeto, err = decimal.NewFromString(neto); err != nil {
		return fmt.Errorf("total_neto de la factura %d: %w", f.ID, err)
	}
	if f.TotalBruto, err = decimal.NewFromString(bruto); err != nil {
		return fmt.Errorf("total_bruto de la factura %d: %w", f.ID, err)
	}
	return nil
}
