package dto

import "github.com/shopspring/decimal"

// Acciones posibles del upsert de productos.
const (
	AccionCreado      = "CREADO"
	AccionActualizado = "ACTUALIZADO"
)

// UpsertProductoRequest petición para crear o acumular stock de un producto.
type UpsertProductoRequest struct {
	Nombre      string          `json:"nombre"`
	Cantidad    int64           `json:"cantidad"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

// UpsertProductoResponse resultado del upsert: acción tomada y stock resultante.
type UpsertProductoResponse struct {
	ID          int64  `json:"id"`
	Accion      string `json:"accion"`
	StockActual int64  `json:"stock"`
}

// ProductoResponse producto en respuestas de lectura.
type ProductoResponse struct {
	ID          int64           `json:"id"`
	Nombre      string          `json:"nombre"`
	StockActual int64           `json:"stock_actual"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
}

// ProductoCatalogo producto del catálogo con la cantidad seleccionada por el
// vendedor durante la toma de pedido (no se persiste).
type ProductoCatalogo struct {
	ID                   int64           `json:"id"`
	Nombre               string          `json:"nombre"`
	StockActual          int64           `json:"stock_actual"`
	PrecioVenta          decimal.Decimal `json:"precio_venta"`
	CantidadSeleccionada int64           `json:"cantidad_seleccionada"`
}
