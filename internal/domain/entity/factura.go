package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TasaIVA es la tasa de impuesto aplicada a toda factura: 16%.
var TasaIVA = decimal.New(16, -2)

// Factura representa la cabecera de una venta completada contra un Local.
// Se crea exactamente una vez por venta y nunca se actualiza ni elimina
// desde este subsistema (cascada si se elimina su Local).
type Factura struct {
	ID           int64
	LocalID      int64
	FechaFactura time.Time // UTC; persistida como texto ISO-8601
	TotalNeto    decimal.Decimal
	TotalBruto   decimal.Decimal
}

// FacturaLinea es una línea de producto dentro de una factura.
// PrecioUnitario es una instantánea del precio al momento de la venta,
// independiente de cambios posteriores en el producto.
type FacturaLinea struct {
	ID             int64
	FacturaID      int64
	ProductoID     int64
	Cantidad       int64
	PrecioUnitario decimal.Decimal
}

// FacturaConLocal es el modelo de lectura de las facturas del día
// (cabecera unida con el nombre del local).
type FacturaConLocal struct {
	Factura
	NombreLocal string
}

// FacturaLineaDetalle es el modelo de lectura de las líneas de una factura:
// la línea unida con el nombre y el precio vigente del producto.
type FacturaLineaDetalle struct {
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	NombreProducto string
	PrecioActual   decimal.Decimal
}
