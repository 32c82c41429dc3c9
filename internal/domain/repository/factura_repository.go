package repository

import (
	"time"

	"github.com/tu-usuario/ventas-campo/internal/domain/entity"
)

// FacturaRepository puerto de persistencia para facturas y sus líneas.
// Las escrituras solo ocurren dentro de la transacción de CrearFactura.
type FacturaRepository interface {
	// Create persiste la cabecera y asigna su ID generado.
	Create(factura *entity.Factura) error
	// CreateLinea persiste una línea referenciando una cabecera ya creada
	// en la misma transacción.
	CreateLinea(linea *entity.FacturaLinea) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(id int64) (*entity.Factura, error)
	// GetLineas devuelve el detalle de las líneas de una factura, unido
	// con el nombre y precio vigente de cada producto.
	GetLineas(facturaID int64) ([]*entity.FacturaLineaDetalle, error)
	// ListByLocal devuelve las facturas de un local, más reciente primero.
	ListByLocal(localID int64) ([]*entity.Factura, error)
	// ListDelDia devuelve las facturas emitidas el día indicado (fecha UTC
	// del timestamp ISO persistido), con el nombre del local.
	ListDelDia(dia time.Time) ([]*entity.FacturaConLocal, error)
}
