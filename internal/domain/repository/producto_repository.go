package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
)

// ProductoRepository puerto de persistencia para productos del inventario local.
type ProductoRepository interface {
	// Create persiste el producto y asigna su ID generado.
	// Devuelve domain.ErrDuplicate si el nombre ya existe.
	Create(producto *entity.Producto) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id int64) (*entity.Producto, error)
	// GetByNombre busca por nombre exacto; (nil, nil) si no existe.
	GetByNombre(nombre string) (*entity.Producto, error)
	List() ([]*entity.Producto, error)
	// Search busca por coincidencia parcial en el nombre (sugerencias).
	Search(pattern string, limit int) ([]*entity.Producto, error)
	// UpdateStock fija el stock del producto al valor indicado.
	UpdateStock(id int64, stock int64) error
	// UpdateStockYPrecio fija stock y precio de venta en una sola sentencia.
	UpdateStockYPrecio(id int64, stock int64, precio decimal.Decimal) error
	// Delete devuelve domain.ErrProductoEnUso si alguna línea de factura lo referencia.
	Delete(id int64) error
}
