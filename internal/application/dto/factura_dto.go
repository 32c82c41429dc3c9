package dto

import "github.com/shopspring/decimal"

// LineaVentaRequest una línea de la venta a facturar. StockActual es la
// instantánea de stock conocida por el llamador al momento de la llamada.
type LineaVentaRequest struct {
	ProductoID  int64           `json:"producto_id"`
	Cantidad    int64           `json:"cantidad"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	StockActual int64           `json:"stock_actual"`
}

// CrearFacturaRequest petición para crear una factura contra un local.
type CrearFacturaRequest struct {
	LocalID int64               `json:"local_id"`
	Lineas  []LineaVentaRequest `json:"productos"`
}

// FacturaCreadaResponse resultado de una facturación exitosa.
type FacturaCreadaResponse struct {
	FacturaID  int64           `json:"factura_id"`
	TotalBruto decimal.Decimal `json:"total_bruto"`
}

// FacturaResponse cabecera de factura en respuestas de lectura.
type FacturaResponse struct {
	ID           int64           `json:"id"`
	LocalID      int64           `json:"local_id"`
	FechaFactura string          `json:"fecha_factura"`
	TotalNeto    decimal.Decimal `json:"total_neto"`
	TotalBruto   decimal.Decimal `json:"total_bruto"`
	NombreLocal  string          `json:"nombre_local,omitempty"`
}

// FacturaLineaResponse línea de factura con el producto resuelto.
type FacturaLineaResponse struct {
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	NombreProducto string          `json:"nombre_producto"`
	PrecioActual   decimal.Decimal `json:"precio_actual_producto"`
}

// FacturaDetalleResponse factura completa: cabecera más líneas.
type FacturaDetalleResponse struct {
	FacturaResponse
	Lineas []FacturaLineaResponse `json:"lineas"`
}
