package facturacion

import (
	"context"

	"github.com/tu-usuario/ventas-campo/internal/domain/repository"
)

// TxRunner ejecuta el callback dentro de una transacción del almacén local,
// con repositorios atados a la tx. Si fn devuelve error la transacción se
// revierte completa; si no, se confirma.
type TxRunner interface {
	RunFacturacion(ctx context.Context, fn func(
		facturaRepo repository.FacturaRepository,
		productoRepo repository.ProductoRepository,
	) error) error
}
