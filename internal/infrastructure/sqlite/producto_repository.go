package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-campo/internal/domain"
	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación de ProductoRepository sobre SQLite (usable con DB o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar *DB o *sql.Tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	res, err := r.q.ExecContext(context.Background(),
		`INSERT INTO productos (nombre, stock_actual, precio_venta) VALUES (?, ?, ?)`,
		producto.Nombre, producto.StockActual, producto.PrecioVenta.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el producto '%s' ya existe: %w", producto.Nombre, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("id de producto generado: %w", err)
	}
	producto.ID = id
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id int64) (*entity.Producto, error) {
	row := r.q.QueryRowContext(context.Background(),
		`SELECT id, nombre, stock_actual, precio_venta FROM productos WHERE id = ?`, id)
	return scanProducto(row)
}

// GetByNombre obtiene un producto por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByNombre(nombre string) (*entity.Producto, error) {
	row := r.q.QueryRowContext(context.Background(),
		`SELECT id, nombre, stock_actual, precio_venta FROM productos WHERE nombre = ?`, nombre)
	return scanProducto(row)
}

// List devuelve todos los productos del inventario.
func (r *ProductoRepo) List() ([]*entity.Producto, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT id, nombre, stock_actual, precio_venta FROM productos`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProductos(rows)
}

// Search busca productos por coincidencia parcial en el nombre (sugerencias).
func (r *ProductoRepo) Search(pattern string, limit int) ([]*entity.Producto, error) {
	rows, err := r.q.QueryContext(context.Background(),
		`SELECT id, nombre, stock_actual, precio_venta
		 FROM productos WHERE nombre LIKE ? LIMIT ?`,
		"%"+pattern+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search productos: %w", err)
	}
	defer rows.Close()
	return scanProductos(rows)
}

// UpdateStock fija el stock del producto al valor indicado.
func (r *ProductoRepo) UpdateStock(id int64, stock int64) error {
	if _, err := r.q.ExecContext(context.Background(),
		`UPDATE productos SET stock_actual = ? WHERE id = ?`, stock, id); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// UpdateStockYPrecio fija stock y precio de venta en una sola sentencia.
func (r *ProductoRepo) UpdateStockYPrecio(id int64, stock int64, precio decimal.Decimal) error {
	if _, err := r.q.ExecContext(context.Background(),
		`UPDATE productos SET stock_actual = ?, precio_venta = ? WHERE id = ?`,
		stock, precio.String(), id); err != nil {
		return fmt.Errorf("update stock y precio: %w", err)
	}
	return nil
}

// Delete elimina un producto. La FK con ON DELETE RESTRICT impide borrar
// productos referenciados por líneas de factura; en ese caso devuelve
// domain.ErrProductoEnUso.
func (r *ProductoRepo) Delete(id int64) error {
	if _, err := r.q.ExecContext(context.Background(), `DELETE FROM productos WHERE id = ?`, id); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductoEnUso
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func scanProducto(row *sql.Row) (*entity.Producto, error) {
	var p entity.Producto
	var precio sql.NullString
	err := row.Scan(&p.ID, &p.Nombre, &p.StockActual, &precio)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	if err := asignarPrecio(&p, precio); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProductos(rows *sql.Rows) ([]*entity.Producto, error) {
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		var precio sql.NullString
		if err := rows.Scan(&p.ID, &p.Nombre, &p.StockActual, &precio); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		if err := asignarPrecio(&p, precio); err != nil {
			return nil, err
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

func asignarPrecio(p *entity.Producto, precio sql.NullString) error {
	if !precio.Valid || precio.String == "" {
		p.PrecioVenta = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(precio.String)
	if err != nil {
		return fmt.Errorf("precio_venta del producto %d: %w", p.ID, err)
	}
	p.PrecioVenta = d
	return nil
}
