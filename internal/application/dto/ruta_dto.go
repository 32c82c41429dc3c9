package dto

// GenerarRutaRequest petición para generar la ruta del día desde la posición
// actual del vendedor. El ID del vendedor sale del token.
type GenerarRutaRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PreVentaLineaRequest una línea del pedido de pre-venta.
type PreVentaLineaRequest struct {
	ProductoID     int64 `json:"producto_id"`
	CantidadPedido int64 `json:"cantidad_pedido"`
}

// CrearPreVentaRequest pedido de pre-venta a remitir al backend central.
type CrearPreVentaRequest struct {
	LocalID int64                  `json:"local_id"`
	Lineas  []PreVentaLineaRequest `json:"productos"`
}

// MergeCatalogoRequest selección en curso del vendedor, a conservar sobre el
// catálogo refrescado.
type MergeCatalogoRequest struct {
	Seleccion []ProductoCatalogo `json:"seleccion"`
}
