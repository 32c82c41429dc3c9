package entity

import "github.com/shopspring/decimal"

// Producto representa un ítem del inventario local del vendedor.
// StockActual nunca puede quedar negativo: lo garantizan la facturación
// (descuento por venta) y el upsert de inventario (incremento por asignación).
type Producto struct {
	ID          int64
	Nombre      string // único
	StockActual int64
	PrecioVenta decimal.Decimal
}
